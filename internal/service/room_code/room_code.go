package room_code

import (
	"errors"
	"fmt"
	"sync"

	"github.com/humanbelnik/coordinator/internal/model"
	nanoid "github.com/jaevor/go-nanoid"
)

const (
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	Length   = 4

	// 36^4 codes exist, so a thousand misses in a row means the space is
	// effectively full.
	DefaultAttempts = 1024

	// nanoid fills its random buffer in blocks of (length/5)*8 bytes, which is
	// empty below 5. Draw longer ids and keep a prefix.
	drawLength = 10
)

var ErrExhausted = errors.New("no free room code")

type Generator struct {
	mu       sync.Mutex
	draw     func() string
	attempts int
}

type Option func(*Generator)

func WithAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.attempts = n
		}
	}
}

// WithSource replaces the random source. Used by tests to script candidates.
func WithSource(draw func() string) Option {
	return func(g *Generator) {
		g.draw = draw
	}
}

func New(opts ...Option) (*Generator, error) {
	long, err := nanoid.CustomASCII(Alphabet, drawLength)
	if err != nil {
		return nil, fmt.Errorf("build code source: %w", err)
	}

	g := &Generator{
		draw:     func() string { return long()[:Length] },
		attempts: DefaultAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func MustNew(opts ...Option) *Generator {
	g, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// Next draws candidates until taken reports one as free.
// Codes of closed rooms are immediately eligible again.
func (g *Generator) Next(taken func(model.RoomCode) bool) (model.RoomCode, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for range g.attempts {
		code := model.RoomCode(g.draw())
		if taken == nil || !taken(code) {
			return code, nil
		}
	}
	return model.EmptyRoomCode, fmt.Errorf("%w: %d attempts", ErrExhausted, g.attempts)
}
