package infra_speech

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	usecase_collab "github.com/humanbelnik/coordinator/internal/usecase/collab"
)

type Option func(*base)

func WithLogger(logger *slog.Logger) Option {
	return func(b *base) {
		b.logger = logger
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(b *base) {
		b.httpClient = hc
	}
}

type base struct {
	name       string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func newBase(name string, baseURL string, opts []Option) base {
	b := base{
		name:       name,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// send returns the raw body of a 2xx answer.
func (b *base) send(req *http.Request) ([]byte, error) {
	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", usecase_collab.ErrServiceUnavailable, b.name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", usecase_collab.ErrServiceUnavailable, b.name, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b.logger.ErrorContext(req.Context(), "speech service request failed",
			slog.String("service", b.name),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: %s returned %d: %s", usecase_collab.ErrUpstream, b.name, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

func (b *base) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	_, err = b.send(req)
	return err
}
