package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/o0fung/toolbox/internal/config"
	"github.com/o0fung/toolbox/internal/plot"
	"github.com/o0fung/toolbox/internal/word"
)

var (
	// word md flags
	wordAPIKey  string
	wordPreview bool
	wordWidth   int

	// word plot flags
	plotXCol      string
	plotYCol      string
	plotDelimiter string
	plotWidth     int
	plotHeight    int
	plotTimes     bool
)

// wordCmd groups document helpers
var wordCmd = &cobra.Command{
	Use:   "word",
	Short: "Document helpers: CSV plotting and markdown conversion",
}

var wordMdCmd = &cobra.Command{
	Use:   "md <file.md>",
	Short: "Convert markdown to DOCX via CloudConvert",
	Long: `Converts a markdown file to DOCX using the CloudConvert API and
writes the result next to the input.

The API key is taken from --api-key, the ` + config.APIKeyEnv + `
environment variable, or the config file. With --preview the file is
rendered to the terminal instead and no conversion happens.`,
	Args: cobra.ExactArgs(1),
	RunE: runWordMd,
}

var wordPlotCmd = &cobra.Command{
	Use:   "plot <file.csv>",
	Short: "Plot CSV columns as a terminal chart",
	Long: `Reads a CSV file and renders two of its columns as a scatter chart.

The delimiter is sniffed unless given; a header row is detected
heuristically. Columns may be selected by name or zero-based index.`,
	Args: cobra.ExactArgs(1),
	RunE: runWordPlot,
}

func init() {
	wordMdCmd.Flags().StringVar(&wordAPIKey, "api-key", "", "CloudConvert API key")
	wordMdCmd.Flags().BoolVar(&wordPreview, "preview", false, "render to the terminal instead of converting")
	wordMdCmd.Flags().IntVar(&wordWidth, "width", 100, "preview word-wrap width")

	wordPlotCmd.Flags().StringVarP(&plotXCol, "x", "x", "0", "x column (name or index)")
	wordPlotCmd.Flags().StringVarP(&plotYCol, "y", "y", "1", "y column (name or index)")
	wordPlotCmd.Flags().StringVar(&plotDelimiter, "delimiter", "", "field delimiter (default: sniffed)")
	wordPlotCmd.Flags().IntVar(&plotWidth, "width", 0, "chart width in cells")
	wordPlotCmd.Flags().IntVar(&plotHeight, "height", 0, "chart height in cells")
	wordPlotCmd.Flags().BoolVar(&plotTimes, "times", false, "parse the x column as datetimes")

	wordCmd.AddCommand(wordMdCmd)
	wordCmd.AddCommand(wordPlotCmd)
}

func runWordMd(cmd *cobra.Command, args []string) error {
	if wordPreview {
		out, err := word.Preview(args[0], wordWidth)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	key := wordAPIKey
	if key == "" {
		key = cfg.CloudConvert.APIKey
	}
	client := word.NewClient(key, logger)
	logger.Debug("converting markdown", zap.String("file", args[0]), zap.String("key", word.MaskKey(key)))

	out, err := client.ConvertMarkdown(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Written %s\n", out)
	return nil
}

func runWordPlot(cmd *cobra.Command, args []string) error {
	var delim rune
	if plotDelimiter != "" {
		runes := []rune(plotDelimiter)
		if len(runes) != 1 {
			return fmt.Errorf("delimiter must be a single character, got %q", plotDelimiter)
		}
		delim = runes[0]
	}

	tbl, err := plot.Read(args[0], delim)
	if err != nil {
		return err
	}

	xIdx, err := resolveColumn(tbl, plotXCol)
	if err != nil {
		return err
	}
	yIdx, err := resolveColumn(tbl, plotYCol)
	if err != nil {
		return err
	}

	var xs, ys []float64
	var skipped int
	if plotTimes {
		xs, ys, skipped = plot.TimePoints(tbl.Column(xIdx), tbl.Column(yIdx))
	} else {
		xs, ys, skipped = plot.Points(tbl.Column(xIdx), tbl.Column(yIdx))
	}
	if skipped > 0 {
		logger.Warn("skipped rows with unparseable cells", zap.Int("rows", skipped))
	}

	width, height := plotWidth, plotHeight
	if width == 0 {
		width = cfg.Plot.Width
	}
	if height == 0 {
		height = cfg.Plot.Height
	}

	out, err := plot.Scatter(xs, ys, plot.Options{
		Width:  width,
		Height: height,
		Title:  args[0],
		XLabel: tbl.Headers[xIdx],
		YLabel: tbl.Headers[yIdx],
	})
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// resolveColumn accepts a header name or a zero-based index.
func resolveColumn(tbl plot.Table, sel string) (int, error) {
	for i, h := range tbl.Headers {
		if strings.EqualFold(h, sel) {
			return i, nil
		}
	}
	var idx int
	if _, err := fmt.Sscanf(sel, "%d", &idx); err == nil && idx >= 0 && idx < len(tbl.Headers) {
		return idx, nil
	}
	return 0, fmt.Errorf("no column %q (have: %s)", sel, strings.Join(tbl.Headers, ", "))
}
