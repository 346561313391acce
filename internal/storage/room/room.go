package storage_room

import (
	"fmt"
	"sync"

	"github.com/humanbelnik/coordinator/internal/model"
	usecase_room "github.com/humanbelnik/coordinator/internal/usecase/room"
)

type CodeGenerator interface {
	Next(taken func(model.RoomCode) bool) (model.RoomCode, error)
}

type room struct {
	order   []string
	members map[string]*model.Submission
}

func newRoom() *room {
	return &room{
		order:   make([]string, 0, 2),
		members: make(map[string]*model.Submission),
	}
}

// slot returns the member's submission, adding an empty one at the end of
// the join order when the user is new.
func (r *room) slot(userID string) *model.Submission {
	if sub, ok := r.members[userID]; ok {
		return sub
	}
	sub := &model.Submission{}
	r.members[userID] = sub
	r.order = append(r.order, userID)
	return sub
}

// Storage keeps every open room in memory. A single lock guards the whole
// map; each read-modify-write happens inside one critical section and
// everything handed out is a copy.
type Storage struct {
	mu    sync.RWMutex
	rooms map[model.RoomCode]*room
	gen   CodeGenerator
}

func New(gen CodeGenerator) *Storage {
	return &Storage{
		rooms: make(map[model.RoomCode]*room),
		gen:   gen,
	}
}

func (s *Storage) CreateRoom() (model.RoomCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	code, err := s.gen.Next(s.existsLocked)
	if err != nil {
		return model.EmptyRoomCode, fmt.Errorf("%w: %w", usecase_room.ErrRoomsUnavailable, err)
	}
	s.rooms[code] = newRoom()
	return code, nil
}

func (s *Storage) existsLocked(code model.RoomCode) bool {
	_, ok := s.rooms[code]
	return ok
}

func (s *Storage) RoomExists(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.existsLocked(model.NormalizeCode(code))
}

func (s *Storage) GetRoom(code string) (model.Room, error) {
	normalized := model.NormalizeCode(code)

	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rooms[normalized]
	if !ok {
		return model.Room{}, usecase_room.ErrRoomNotFound
	}

	snapshot := model.Room{
		Code:    normalized,
		Members: make([]model.Member, 0, len(r.order)),
	}
	for _, userID := range r.order {
		snapshot.Members = append(snapshot.Members, model.Member{
			UserID:     userID,
			Submission: r.members[userID].Clone(),
		})
	}
	return snapshot, nil
}

// PutSubmission replaces everything the user sent before except an attached
// questionnaire. Returns the number of members after the write.
func (s *Storage) PutSubmission(code string, userID string, sub model.Submission) (int, error) {
	normalized := model.NormalizeCode(code)
	incoming := sub.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[normalized]
	if !ok {
		return 0, usecase_room.ErrRoomNotFound
	}

	slot := r.slot(userID)
	if slot.Questionnaire != nil {
		incoming.Questionnaire = slot.Questionnaire
	}
	*slot = incoming

	return len(r.order), nil
}

// MergeQuestionnaire attaches q to the user's submission. A user that has not
// synced yet gets a placeholder submission so the questionnaire has a home.
func (s *Storage) MergeQuestionnaire(code string, userID string, q model.Questionnaire) error {
	normalized := model.NormalizeCode(code)
	incoming := q.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[normalized]
	if !ok {
		return usecase_room.ErrRoomNotFound
	}

	r.slot(userID).Questionnaire = &incoming
	return nil
}

func (s *Storage) CloseRoom(code string) bool {
	normalized := model.NormalizeCode(code)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[normalized]; !ok {
		return false
	}
	delete(s.rooms, normalized)
	return true
}

func (s *Storage) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.rooms)
}
