package infra_speech

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
)

const (
	uploadName = "audio.wav"
	uploadType = "audio/wav"
)

// STTClient uploads audio to a /transcribe endpoint as a multipart form.
type STTClient struct {
	base
}

func NewSTT(baseURL string, opts ...Option) *STTClient {
	return &STTClient{
		base: newBase("stt", baseURL, opts),
	}
}

func (c *STTClient) Transcribe(ctx context.Context, audio []byte) ([]byte, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, uploadName))
	header.Set("Content-Type", uploadType)
	part, err := form.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transcribe", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	return c.send(req)
}
