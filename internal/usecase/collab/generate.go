package usecase_collab

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/humanbelnik/coordinator/internal/model"
)

// DefaultCompletionRequest holds the sampling settings used when the caller
// leaves them out.
func DefaultCompletionRequest() model.CompletionRequest {
	return model.CompletionRequest{
		Temperature:   1.2,
		MaxTokens:     4096,
		TopP:          0.95,
		TopK:          80,
		ContextLength: 16384,
		RepeatPenalty: 1.1,
	}
}

func (u *Usecase) Complete(ctx context.Context, req model.CompletionRequest) (model.Completion, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return model.Completion{}, fmt.Errorf("%w: prompt is required", ErrValidation)
	}
	if req.Model == "" {
		req.Model = u.defaultModel
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeouts.Generate)
	defer cancel()

	completion, err := u.llm.Generate(ctx, req)
	if err != nil {
		u.logger.ErrorContext(ctx, "generation failed",
			slog.String("model", req.Model),
			slog.String("error", err.Error()))
		return model.Completion{}, err
	}
	return completion, nil
}

func (u *Usecase) Speak(ctx context.Context, text string, voice string) (model.Speech, error) {
	if strings.TrimSpace(text) == "" {
		return model.Speech{}, fmt.Errorf("%w: text is required", ErrValidation)
	}
	if voice == "" {
		voice = "default"
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeouts.Speech)
	defer cancel()

	speech, err := u.speaker.Synthesize(ctx, text, voice)
	if err != nil {
		u.logger.ErrorContext(ctx, "speech synthesis failed", slog.String("error", err.Error()))
		return model.Speech{}, err
	}
	return speech, nil
}

// Transcribe returns the transcription service answer untouched.
func (u *Usecase) Transcribe(ctx context.Context, audio []byte) ([]byte, error) {
	if len(audio) == 0 {
		return nil, fmt.Errorf("%w: audio is required", ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeouts.Speech)
	defer cancel()

	transcript, err := u.transcriber.Transcribe(ctx, audio)
	if err != nil {
		u.logger.ErrorContext(ctx, "transcription failed", slog.String("error", err.Error()))
		return nil, err
	}
	return transcript, nil
}
