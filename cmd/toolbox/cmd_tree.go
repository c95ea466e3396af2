package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/o0fung/toolbox/internal/tree"
)

var (
	treeDepth      int
	treeSkipHidden bool
	treeExec       string
	treeWatch      bool
)

// treeCmd displays a directory tree
var treeCmd = &cobra.Command{
	Use:   "tree <path>",
	Short: "Display a directory tree",
	Long: `Displays the directory at <path> as a tree.

A registered file processor can annotate every file visited (--exec);
--watch keeps the tree on screen and re-renders it on filesystem changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runTree,
}

func init() {
	treeCmd.Flags().IntVarP(&treeDepth, "depth", "d", 0, "maximum depth to display (0 = unlimited)")
	treeCmd.Flags().BoolVarP(&treeSkipHidden, "skip-hidden", "s", false, "skip hidden files and directories")
	treeCmd.Flags().StringVarP(&treeExec, "exec", "e", "", "run a file processor on every file: "+strings.Join(tree.Names(), ", "))
	treeCmd.Flags().BoolVarP(&treeWatch, "watch", "w", false, "re-render on filesystem changes until interrupted")
}

func runTree(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("skip-hidden") {
		treeSkipHidden = cfg.Tree.SkipHidden
	}

	opts := tree.Options{
		MaxDepth:   treeDepth,
		SkipHidden: treeSkipHidden,
	}
	if treeExec != "" {
		p, ok := tree.Lookup(treeExec)
		if !ok {
			return fmt.Errorf("unknown processor %q (have: %s)", treeExec, strings.Join(tree.Names(), ", "))
		}
		opts.Processor = p
	}

	if treeWatch {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return tree.Watch(ctx, args[0], opts, cmd.OutOrStdout(), logger)
	}

	out, err := tree.Render(args[0], opts)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
