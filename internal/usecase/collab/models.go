package usecase_collab

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

const tagsFlightKey = "tags"

// Tags lists the models the generation service has loaded. A configured
// cache is consulted first; concurrent misses share one upstream call.
func (u *Usecase) Tags(ctx context.Context) ([]string, error) {
	if u.cache != nil {
		tags, ok, err := u.cache.Get(ctx)
		if err != nil {
			u.logger.WarnContext(ctx, "tag cache read failed", slog.String("error", err.Error()))
		} else if ok {
			return tags, nil
		}
	}

	// The flight is shared, so one caller going away must not fail the rest.
	v, err, _ := u.tagsFlight.Do(tagsFlightKey, func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.timeouts.Catalog)
		defer cancel()
		return u.llm.Tags(ctx)
	})
	if err != nil {
		return nil, err
	}
	tags := v.([]string)

	if u.cache != nil {
		if err := u.cache.Set(ctx, tags); err != nil {
			u.logger.WarnContext(ctx, "tag cache write failed", slog.String("error", err.Error()))
		}
	}
	return tags, nil
}

func (u *Usecase) ModelFiles() ([]string, error) {
	return u.files.List()
}

// LoadModel registers a weights file from the models directory under name.
// The generation service reads the file from the host side path.
func (u *Usecase) LoadModel(ctx context.Context, filename string, name string) error {
	if filename == "" || name == "" {
		return fmt.Errorf("%w: filename and model_name required", ErrValidation)
	}

	exists, err := u.files.Exists(filename)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: File %s not found", ErrModelFileNotFound, filename)
	}

	modelfile := fmt.Sprintf("FROM \"%s\"\n", strings.ReplaceAll(u.files.HostPath(filename), `\`, "/"))
	u.logger.InfoContext(ctx, "creating model",
		slog.String("model", name),
		slog.String("modelfile", modelfile))

	ctx, cancel := context.WithTimeout(ctx, u.timeouts.ModelLoad)
	defer cancel()

	if err := u.llm.CreateModel(ctx, name, modelfile); err != nil {
		u.logger.ErrorContext(ctx, "model load failed", slog.String("model", name), slog.String("error", err.Error()))
		return err
	}

	if u.cache != nil {
		if err := u.cache.Invalidate(ctx); err != nil {
			u.logger.WarnContext(ctx, "tag cache invalidate failed", slog.String("error", err.Error()))
		}
	}
	return nil
}
