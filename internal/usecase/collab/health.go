package usecase_collab

import (
	"context"
	"errors"

	"github.com/humanbelnik/coordinator/internal/model"
	"golang.org/x/sync/errgroup"
)

type Health struct {
	Ollama model.ServiceStatus
	TTS    model.ServiceStatus
	STT    model.ServiceStatus
}

// Health pings every collaborator at once.
func (u *Usecase) Health(ctx context.Context) Health {
	ctx, cancel := context.WithTimeout(ctx, u.timeouts.Health)
	defer cancel()

	var (
		h Health
		g errgroup.Group
	)
	g.Go(func() error {
		h.Ollama = pingStatus(u.llm.Ping(ctx))
		return nil
	})
	g.Go(func() error {
		h.TTS = pingStatus(u.speaker.Ping(ctx))
		return nil
	})
	g.Go(func() error {
		h.STT = pingStatus(u.transcriber.Ping(ctx))
		return nil
	})
	_ = g.Wait()

	return h
}

func pingStatus(err error) model.ServiceStatus {
	switch {
	case err == nil:
		return model.ServiceConnected
	case errors.Is(err, ErrUpstream):
		return model.ServiceError
	default:
		return model.ServiceUnavailable
	}
}
