package usecase_collab

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/humanbelnik/coordinator/internal/model"
	"golang.org/x/sync/singleflight"
)

var (
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrUpstream           = errors.New("upstream error")
	ErrValidation         = errors.New("validation failed")
	ErrModelFileNotFound  = errors.New("model file not found")
)

//go:generate mockery --name=LLM --output=./mocks/collab/llm --filename=llm.go
type LLM interface {
	Generate(ctx context.Context, req model.CompletionRequest) (model.Completion, error)
	Tags(ctx context.Context) ([]string, error)
	CreateModel(ctx context.Context, name string, modelfile string) error
	Ping(ctx context.Context) error
}

//go:generate mockery --name=Speaker --output=./mocks/collab/speaker --filename=speaker.go
type Speaker interface {
	Synthesize(ctx context.Context, text string, voice string) (model.Speech, error)
	Ping(ctx context.Context) error
}

//go:generate mockery --name=Transcriber --output=./mocks/collab/transcriber --filename=transcriber.go
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) ([]byte, error)
	Ping(ctx context.Context) error
}

//go:generate mockery --name=ModelFiles --output=./mocks/collab/files --filename=files.go
type ModelFiles interface {
	List() ([]string, error)
	Exists(filename string) (bool, error)
	HostPath(filename string) string
}

//go:generate mockery --name=TagCache --output=./mocks/collab/cache --filename=cache.go
type TagCache interface {
	Get(ctx context.Context) ([]string, bool, error)
	Set(ctx context.Context, tags []string) error
	Invalidate(ctx context.Context) error
}

type Timeouts struct {
	Generate  time.Duration
	Speech    time.Duration
	Catalog   time.Duration
	Health    time.Duration
	ModelLoad time.Duration
}

func DefaultTimeouts() Timeouts {
	return Timeouts{
		Generate:  300 * time.Second,
		Speech:    60 * time.Second,
		Catalog:   5 * time.Second,
		Health:    5 * time.Second,
		ModelLoad: 300 * time.Second,
	}
}

type Usecase struct {
	llm          LLM
	speaker      Speaker
	transcriber  Transcriber
	files        ModelFiles
	cache        TagCache
	defaultModel string
	timeouts     Timeouts
	tagsFlight   singleflight.Group
	logger       *slog.Logger
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

// WithTagCache enables caching of the model tag list.
func WithTagCache(cache TagCache) Option {
	return func(u *Usecase) {
		u.cache = cache
	}
}

func WithTimeouts(t Timeouts) Option {
	return func(u *Usecase) {
		u.timeouts = t
	}
}

func New(
	llm LLM,
	speaker Speaker,
	transcriber Transcriber,
	files ModelFiles,
	defaultModel string,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		llm:          llm,
		speaker:      speaker,
		transcriber:  transcriber,
		files:        files,
		defaultModel: defaultModel,
		timeouts:     DefaultTimeouts(),
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}
