package usecase_scene

import (
	"context"
	"errors"
	"log/slog"

	"github.com/humanbelnik/coordinator/internal/model"
)

var ErrRoomEmpty = errors.New("room empty or waiting for partner")

//go:generate mockery --name=RoomReader --output=./mocks/scene/reader --filename=reader.go
type RoomReader interface {
	GetRoom(code string) (model.Room, error)
}

type Merger interface {
	Merge(subs []model.Submission) model.MergedScene
}

// Generator tells the client where to send the merged scene for generation.
type Generator struct {
	URL   string
	Model string
}

type Result struct {
	Scene     model.MergedScene
	Generator Generator
}

type Usecase struct {
	rooms     RoomReader
	merger    Merger
	generator Generator
	logger    *slog.Logger
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(rooms RoomReader, merger Merger, generator Generator, opts ...Option) *Usecase {
	u := &Usecase{
		rooms:     rooms,
		merger:    merger,
		generator: generator,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Solo merges a single submission without touching any room.
func (u *Usecase) Solo(ctx context.Context, sub model.Submission) Result {
	scene := u.merger.Merge([]model.Submission{sub})
	u.logger.InfoContext(ctx, "solo scene merged", slog.String("intensity", string(scene.FinalIntensity)))

	return Result{
		Scene:     scene,
		Generator: u.generator,
	}
}

// Room merges every member of the room. The merge runs on a snapshot, so
// writes that land while it runs are not part of the result.
func (u *Usecase) Room(ctx context.Context, code string) (Result, error) {
	room, err := u.rooms.GetRoom(code)
	if err != nil {
		return Result{}, err
	}
	if room.Size() == 0 {
		return Result{}, ErrRoomEmpty
	}

	scene := u.merger.Merge(room.Submissions())
	u.logger.InfoContext(ctx, "room scene merged",
		slog.String("room", room.Code.String()),
		slog.Int("members", room.Size()),
		slog.String("intensity", string(scene.FinalIntensity)))

	return Result{
		Scene:     scene,
		Generator: u.generator,
	}, nil
}
