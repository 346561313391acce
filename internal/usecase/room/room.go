package usecase_room

import (
	"context"
	"errors"
	"log/slog"

	"github.com/humanbelnik/coordinator/internal/model"
)

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomsUnavailable = errors.New("no available rooms")
)

const (
	RoleHost    = "host"
	RolePartner = "partner"
)

//go:generate mockery --name=RoomStore --output=./mocks/room/store --filename=store.go
type RoomStore interface {
	CreateRoom() (model.RoomCode, error)
	RoomExists(code string) bool
	GetRoom(code string) (model.Room, error)
	PutSubmission(code string, userID string, sub model.Submission) (int, error)
	MergeQuestionnaire(code string, userID string, q model.Questionnaire) error
	CloseRoom(code string) bool
}

// Notifier receives room changes after the store has been updated.
//
//go:generate mockery --name=Notifier --output=./mocks/room/notifier --filename=notifier.go
type Notifier interface {
	RoomUpdated(room model.Room)
	RoomClosed(code model.RoomCode)
}

type nopNotifier struct{}

func (nopNotifier) RoomUpdated(model.Room)     {}
func (nopNotifier) RoomClosed(model.RoomCode) {}

type Usecase struct {
	store    RoomStore
	notifier Notifier
	logger   *slog.Logger
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func WithNotifier(n Notifier) Option {
	return func(u *Usecase) {
		u.notifier = n
	}
}

func New(store RoomStore, opts ...Option) *Usecase {
	u := &Usecase{
		store:    store,
		notifier: nopNotifier{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// SetNotifier is used when the notifier itself depends on the usecase.
func (u *Usecase) SetNotifier(n Notifier) {
	u.notifier = n
}

type Entry struct {
	Code model.RoomCode
	Role string
}

// Enter creates a fresh room when code is empty, otherwise joins an existing one.
func (u *Usecase) Enter(ctx context.Context, code string) (Entry, error) {
	if code == "" {
		created, err := u.store.CreateRoom()
		if err != nil {
			return Entry{}, err
		}
		u.logger.InfoContext(ctx, "room created", slog.String("room", created.String()))
		return Entry{Code: created, Role: RoleHost}, nil
	}

	room, err := u.store.GetRoom(code)
	if err != nil {
		return Entry{}, err
	}
	u.notifier.RoomUpdated(room)

	return Entry{Code: room.Code, Role: RolePartner}, nil
}

func (u *Usecase) Status(ctx context.Context, code string) (model.Room, error) {
	return u.store.GetRoom(code)
}

// Sync stores the member's submission and returns how many members the room has.
func (u *Usecase) Sync(ctx context.Context, code string, userID string, sub model.Submission) (int, error) {
	if sub.Intensity != "" && !sub.Intensity.Known() {
		u.logger.WarnContext(ctx, "unknown intensity",
			slog.String("room", code),
			slog.String("user_id", userID),
			slog.String("intensity", string(sub.Intensity)))
	}

	size, err := u.store.PutSubmission(code, userID, sub)
	if err != nil {
		return 0, err
	}
	u.publish(ctx, code)

	return size, nil
}

func (u *Usecase) SaveQuestionnaire(ctx context.Context, code string, userID string, q model.Questionnaire) error {
	if err := u.store.MergeQuestionnaire(code, userID, q); err != nil {
		return err
	}
	u.publish(ctx, code)

	return nil
}

func (u *Usecase) Close(ctx context.Context, code string) error {
	if !u.store.CloseRoom(code) {
		return ErrRoomNotFound
	}
	normalized := model.NormalizeCode(code)
	u.logger.InfoContext(ctx, "room closed", slog.String("room", normalized.String()))
	u.notifier.RoomClosed(normalized)

	return nil
}

// publish sends a fresh snapshot to listeners. The room may have been closed
// in between, which is not an error for the caller.
func (u *Usecase) publish(ctx context.Context, code string) {
	room, err := u.store.GetRoom(code)
	if err != nil {
		u.logger.DebugContext(ctx, "skip lobby update", slog.String("room", code), slog.String("error", err.Error()))
		return
	}
	u.notifier.RoomUpdated(room)
}
