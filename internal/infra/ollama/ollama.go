package infra_ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/humanbelnik/coordinator/internal/model"
	usecase_collab "github.com/humanbelnik/coordinator/internal/usecase/collab"
)

// Client talks to an Ollama server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*Client)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) URL() string {
	return c.baseURL
}

type generateOptions struct {
	Temperature   float64 `json:"temperature"`
	NumPredict    int     `json:"num_predict"`
	TopP          float64 `json:"top_p"`
	TopK          int     `json:"top_k"`
	RepeatPenalty float64 `json:"repeat_penalty"`
	NumCtx        int     `json:"num_ctx"`
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     *bool  `json:"done"`
}

func (c *Client) Generate(ctx context.Context, req model.CompletionRequest) (model.Completion, error) {
	body := generateRequest{
		Model:  req.Model,
		Prompt: req.Prompt,
		Stream: false,
		Options: generateOptions{
			Temperature:   req.Temperature,
			NumPredict:    req.MaxTokens,
			TopP:          req.TopP,
			TopK:          req.TopK,
			RepeatPenalty: req.RepeatPenalty,
			NumCtx:        req.ContextLength,
		},
	}

	var resp generateResponse
	if err := c.do(ctx, http.MethodPost, "/api/generate", body, &resp); err != nil {
		return model.Completion{}, err
	}

	done := true
	if resp.Done != nil {
		done = *resp.Done
	}
	return model.Completion{
		Text:  resp.Response,
		Model: req.Model,
		Done:  done,
	}, nil
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

func (c *Client) Tags(ctx context.Context) ([]string, error) {
	var resp tagsResponse
	if err := c.do(ctx, http.MethodGet, "/api/tags", nil, &resp); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(resp.Models))
	for _, m := range resp.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

type createRequest struct {
	Model     string `json:"model"`
	Modelfile string `json:"modelfile"`
	Stream    bool   `json:"stream"`
}

func (c *Client) CreateModel(ctx context.Context, name string, modelfile string) error {
	return c.do(ctx, http.MethodPost, "/api/create", createRequest{
		Model:     name,
		Modelfile: modelfile,
		Stream:    false,
	}, nil)
}

func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/tags", nil, nil)
}

// do sends an optional JSON body and decodes a JSON answer into out when out
// is not nil. Transport failures wrap ErrServiceUnavailable, non-2xx answers
// wrap ErrUpstream.
func (c *Client) do(ctx context.Context, method string, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: ollama: %w", usecase_collab.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.ErrorContext(ctx, "ollama request failed",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(msg)))
		return fmt.Errorf("%w: Ollama returned %d: %s", usecase_collab.ErrUpstream, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode ollama response: %w", usecase_collab.ErrUpstream, err)
	}
	return nil
}
