package infra_speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/humanbelnik/coordinator/internal/model"
)

const (
	DefaultTTSModel = "tts-1"
	speechFormat    = "mp3"
)

// TTSClient speaks the OpenAI compatible /audio/speech protocol.
type TTSClient struct {
	base
	model string
}

func NewTTS(baseURL string, ttsModel string, opts ...Option) *TTSClient {
	if ttsModel == "" {
		ttsModel = DefaultTTSModel
	}
	return &TTSClient{
		base:  newBase("tts", baseURL, opts),
		model: ttsModel,
	}
}

type speechRequest struct {
	Input string `json:"input"`
	Voice string `json:"voice"`
	Model string `json:"model"`
}

func (c *TTSClient) Synthesize(ctx context.Context, text string, voice string) (model.Speech, error) {
	raw, err := json.Marshal(speechRequest{
		Input: text,
		Voice: voice,
		Model: c.model,
	})
	if err != nil {
		return model.Speech{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/audio/speech", bytes.NewReader(raw))
	if err != nil {
		return model.Speech{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	audio, err := c.send(req)
	if err != nil {
		return model.Speech{}, err
	}
	return model.Speech{Audio: audio, Format: speechFormat}, nil
}
