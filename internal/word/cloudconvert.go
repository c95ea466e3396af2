// Package word converts markdown documents to DOCX via the CloudConvert
// API and renders terminal previews.
package word

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// markdownSyntax is the flavor CloudConvert parses the input with.
const markdownSyntax = "github"

const defaultBaseURL = "https://api.cloudconvert.com"

// ErrMissingAPIKey is returned before any network call when no key is
// configured.
var ErrMissingAPIKey = errors.New("missing CloudConvert API key")

// Client talks to the CloudConvert jobs API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	logger  *zap.Logger

	pollInterval time.Duration
}

// NewClient builds a CloudConvert client. The logger may not be nil.
func NewClient(apiKey string, logger *zap.Logger) *Client {
	return &Client{
		apiKey:       apiKey,
		baseURL:      defaultBaseURL,
		http:         &http.Client{Timeout: 2 * time.Minute},
		logger:       logger,
		pollInterval: 2 * time.Second,
	}
}

type job struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Tasks  []task `json:"tasks"`
}

type task struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Operation string `json:"operation"`
	Status    string `json:"status"`
	Message   string `json:"message"`
	Result    struct {
		Form *struct {
			URL        string            `json:"url"`
			Parameters map[string]string `json:"parameters"`
		} `json:"form"`
		Files []struct {
			Filename string `json:"filename"`
			URL      string `json:"url"`
		} `json:"files"`
	} `json:"result"`
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

// ConvertMarkdown uploads mdPath, converts it to DOCX and downloads the
// result next to the input. Returns the path of the written DOCX.
func (c *Client) ConvertMarkdown(ctx context.Context, mdPath string) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", ErrMissingAPIKey
	}

	j, err := c.createJob(ctx)
	if err != nil {
		return "", fmt.Errorf("create job: %w", err)
	}
	c.logger.Debug("cloudconvert job created", zap.String("job", j.ID))

	upload := findTask(j.Tasks, "import/upload")
	if upload == nil || upload.Result.Form == nil {
		return "", errors.New("job has no upload task")
	}
	if err := c.uploadFile(ctx, upload.Result.Form.URL, upload.Result.Form.Parameters, mdPath); err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}

	done, err := c.waitJob(ctx, j.ID)
	if err != nil {
		return "", err
	}

	export := findTask(done.Tasks, "export/url")
	if export == nil || len(export.Result.Files) == 0 {
		return "", errors.New("job finished without an export file")
	}

	out := strings.TrimSuffix(mdPath, filepath.Ext(mdPath)) + ".docx"
	if err := c.download(ctx, export.Result.Files[0].URL, out); err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	return out, nil
}

func (c *Client) createJob(ctx context.Context) (*job, error) {
	payload := map[string]any{
		"tasks": map[string]any{
			"import-md": map[string]any{
				"operation": "import/upload",
			},
			"convert-md": map[string]any{
				"operation":     "convert",
				"input":         "import-md",
				"input_format":  "md",
				"output_format": "docx",
				"engine":        "pandoc",
				"markdown_syntax": markdownSyntax,
			},
			"export-docx": map[string]any{
				"operation": "export/url",
				"input":     "convert-md",
			},
		},
	}
	var j job
	if err := c.call(ctx, http.MethodPost, "/v2/jobs", payload, &j); err != nil {
		return nil, err
	}
	return &j, nil
}

func (c *Client) waitJob(ctx context.Context, id string) (*job, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()
	for {
		var j job
		if err := c.call(ctx, http.MethodGet, "/v2/jobs/"+id, nil, &j); err != nil {
			return nil, err
		}
		switch j.Status {
		case "finished":
			return &j, nil
		case "error":
			return nil, fmt.Errorf("conversion failed: %s", jobError(&j))
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *Client) call(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("cloudconvert %s %s: %s: %s", method, path, resp.Status, msg)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return err
	}
	return json.Unmarshal(env.Data, out)
}

func (c *Client) uploadFile(ctx context.Context, url string, params map[string]string, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range params {
		if err := w.WriteField(k, v); err != nil {
			return err
		}
	}
	part, err := w.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, f); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("upload rejected: %s", resp.Status)
	}
	return nil
}

func (c *Client) download(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download rejected: %s", resp.Status)
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func findTask(tasks []task, operation string) *task {
	for i := range tasks {
		if tasks[i].Operation == operation {
			return &tasks[i]
		}
	}
	return nil
}

func jobError(j *job) string {
	for _, t := range j.Tasks {
		if t.Status == "error" && t.Message != "" {
			return t.Message
		}
	}
	return "unknown error"
}

// MaskKey shortens an API key for log output.
func MaskKey(key string) string {
	if len(key) < 10 {
		return strings.Repeat("*", len(key))
	}
	return key[:6] + "..." + key[len(key)-4:]
}
