package storage_room

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/humanbelnik/coordinator/internal/model"
	"github.com/humanbelnik/coordinator/internal/service/room_code"
	usecase_room "github.com/humanbelnik/coordinator/internal/usecase/room"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type StorageRoomUnitSuite struct {
	suite.Suite
}

type resources struct {
	storage *Storage
}

func initResources(t provider.T) *resources {
	gen, err := room_code.New()
	t.Require().NoError(err)

	return &resources{
		storage: New(gen),
	}
}

func strptr(s string) *string {
	return &s
}

func validSubmission() model.Submission {
	return model.Submission{
		Role:      model.RoleDom,
		Intensity: model.IntensityWeird,
		Inventory: []string{"rope"},
		Outfit:    []string{"latex"},
		Kinks:     []string{"k1"},
	}
}

func (s *StorageRoomUnitSuite) TestCreateRoom(t provider.T) {
	t.Parallel()
	r := initResources(t)

	code, err := r.storage.CreateRoom()

	t.Require().NoError(err)
	assert.Len(t, code.String(), room_code.Length)
	assert.True(t, r.storage.RoomExists(code.String()))
	assert.Equal(t, 1, r.storage.Count())

	room, err := r.storage.GetRoom(code.String())
	t.Require().NoError(err)
	assert.Equal(t, 0, room.Size())
}

func (s *StorageRoomUnitSuite) TestCreateRoomDoesNotBlockReaders(t provider.T) {
	t.Parallel()
	r := initResources(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		code, err := r.storage.CreateRoom()
		if err != nil {
			return
		}
		r.storage.RoomExists("ABCD")
		_, _ = r.storage.GetRoom(code.String())
	}()

	select {
	case <-done:
		assert.Equal(t, 1, r.storage.Count())
	case <-time.After(3 * time.Second):
		t.Require().True(false, "CreateRoom with the default code source did not return within 3s")
	}
}

func (s *StorageRoomUnitSuite) TestCreateRoomConcurrent(t provider.T) {
	t.Parallel()
	r := initResources(t)

	const n = 200
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		codes = make(map[model.RoomCode]struct{}, n)
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, err := r.storage.CreateRoom()
			if err != nil {
				return
			}
			mu.Lock()
			codes[code] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, codes, n)
	assert.Equal(t, n, r.storage.Count())
}

func (s *StorageRoomUnitSuite) TestCreateRoomExhausted(t provider.T) {
	t.Parallel()

	gen := room_code.MustNew(room_code.WithAttempts(4), room_code.WithSource(func() string { return "AAAA" }))
	storage := New(gen)

	_, err := storage.CreateRoom()
	t.Require().NoError(err)

	code, err := storage.CreateRoom()

	assert.ErrorIs(t, err, usecase_room.ErrRoomsUnavailable)
	assert.ErrorIs(t, err, room_code.ErrExhausted)
	assert.Equal(t, model.EmptyRoomCode, code)
	assert.Equal(t, 1, storage.Count())
}

func (s *StorageRoomUnitSuite) TestCaseInsensitive(t provider.T) {
	t.Parallel()

	gen := room_code.MustNew(room_code.WithSource(func() string { return "AB12" }))
	storage := New(gen)
	_, err := storage.CreateRoom()
	t.Require().NoError(err)

	testCases := []struct {
		name string
		code string
	}{
		{name: "Should find lowercase code", code: "ab12"},
		{name: "Should find mixed case code", code: "aB12"},
		{name: "Should find padded code", code: "  ab12 "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			assert.True(t, storage.RoomExists(tc.code))
			room, err := storage.GetRoom(tc.code)
			assert.NoError(t, err)
			assert.Equal(t, model.RoomCode("AB12"), room.Code)
		})
	}
}

func (s *StorageRoomUnitSuite) TestMissingRoom(t provider.T) {
	t.Parallel()
	r := initResources(t)

	_, err := r.storage.GetRoom("NOPE")
	assert.ErrorIs(t, err, usecase_room.ErrRoomNotFound)

	_, err = r.storage.PutSubmission("NOPE", "u1", validSubmission())
	assert.ErrorIs(t, err, usecase_room.ErrRoomNotFound)

	err = r.storage.MergeQuestionnaire("NOPE", "u1", model.Questionnaire{})
	assert.ErrorIs(t, err, usecase_room.ErrRoomNotFound)

	assert.False(t, r.storage.RoomExists("NOPE"))
	assert.False(t, r.storage.CloseRoom("NOPE"))
}

func (s *StorageRoomUnitSuite) TestPutSubmission(t provider.T) {
	t.Parallel()
	r := initResources(t)
	code, err := r.storage.CreateRoom()
	t.Require().NoError(err)

	size, err := r.storage.PutSubmission(code.String(), "u1", validSubmission())
	t.Require().NoError(err)
	assert.Equal(t, 1, size)

	size, err = r.storage.PutSubmission(code.String(), "u2", validSubmission())
	t.Require().NoError(err)
	assert.Equal(t, 2, size)

	resync := model.Submission{
		Role:      model.RoleSub,
		Intensity: model.IntensityCasual,
		Inventory: []string{},
		Outfit:    []string{},
		Kinks:     []string{"k2"},
	}
	size, err = r.storage.PutSubmission(code.String(), "u1", resync)
	t.Require().NoError(err)
	assert.Equal(t, 2, size)

	room, err := r.storage.GetRoom(code.String())
	t.Require().NoError(err)
	assert.Equal(t, []string{"u1", "u2"}, room.UserIDs())
	assert.Equal(t, resync, room.Members[0].Submission)
}

func (s *StorageRoomUnitSuite) TestQuestionnaire(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		syncFirst   bool
		syncAfter   bool
		expectedSub func(q model.Questionnaire) model.Submission
	}{
		{
			name: "Should create placeholder for a user that never synced",
			expectedSub: func(q model.Questionnaire) model.Submission {
				return model.Submission{Questionnaire: &q}
			},
		},
		{
			name:      "Should leave synced fields untouched",
			syncFirst: true,
			expectedSub: func(q model.Questionnaire) model.Submission {
				sub := validSubmission()
				sub.Questionnaire = &q
				return sub
			},
		},
		{
			name:      "Should survive a later sync",
			syncAfter: true,
			expectedSub: func(q model.Questionnaire) model.Submission {
				sub := validSubmission()
				sub.Questionnaire = &q
				return sub
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			code, err := r.storage.CreateRoom()
			t.Require().NoError(err)

			q := model.Questionnaire{Theme: strptr("dungeon"), Preferences: []string{"slow"}, Notes: strptr("n")}

			if tc.syncFirst {
				_, err = r.storage.PutSubmission(code.String(), "u1", validSubmission())
				t.Require().NoError(err)
			}
			t.Require().NoError(r.storage.MergeQuestionnaire(code.String(), "u1", q))
			if tc.syncAfter {
				_, err = r.storage.PutSubmission(code.String(), "u1", validSubmission())
				t.Require().NoError(err)
			}

			room, err := r.storage.GetRoom(code.String())
			t.Require().NoError(err)
			t.Require().Equal(1, room.Size())
			assert.Equal(t, tc.expectedSub(q), room.Members[0].Submission)
		})
	}
}

func (s *StorageRoomUnitSuite) TestSnapshotIsDetached(t provider.T) {
	t.Parallel()
	r := initResources(t)
	code, err := r.storage.CreateRoom()
	t.Require().NoError(err)

	sub := validSubmission()
	_, err = r.storage.PutSubmission(code.String(), "u1", sub)
	t.Require().NoError(err)
	sub.Inventory[0] = "mutated by caller"

	room, err := r.storage.GetRoom(code.String())
	t.Require().NoError(err)
	room.Members[0].Submission.Kinks[0] = "mutated by reader"

	again, err := r.storage.GetRoom(code.String())
	t.Require().NoError(err)
	assert.Equal(t, validSubmission(), again.Members[0].Submission)
}

func (s *StorageRoomUnitSuite) TestConcurrentWritesSameUser(t provider.T) {
	t.Parallel()
	r := initResources(t)
	code, err := r.storage.CreateRoom()
	t.Require().NoError(err)

	q := model.Questionnaire{Theme: strptr("t")}
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = r.storage.PutSubmission(code.String(), "u1", validSubmission())
	}()
	go func() {
		defer wg.Done()
		_ = r.storage.MergeQuestionnaire(code.String(), "u1", q)
	}()
	wg.Wait()

	room, err := r.storage.GetRoom(code.String())
	t.Require().NoError(err)
	t.Require().Equal(1, room.Size())
	got := room.Members[0].Submission
	assert.Equal(t, model.RoleDom, got.Role)
	t.Require().NotNil(got.Questionnaire)
	assert.Equal(t, "t", *got.Questionnaire.Theme)
}

func (s *StorageRoomUnitSuite) TestConcurrentMembers(t provider.T) {
	t.Parallel()
	r := initResources(t)
	code, err := r.storage.CreateRoom()
	t.Require().NoError(err)

	const n = 50
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.storage.PutSubmission(code.String(), fmt.Sprintf("u%d", i), validSubmission())
		}()
	}
	wg.Wait()

	room, err := r.storage.GetRoom(code.String())
	t.Require().NoError(err)
	assert.Equal(t, n, room.Size())
}

func (s *StorageRoomUnitSuite) TestCloseRoom(t provider.T) {
	t.Parallel()
	r := initResources(t)
	code, err := r.storage.CreateRoom()
	t.Require().NoError(err)

	assert.True(t, r.storage.CloseRoom(code.String()))
	assert.False(t, r.storage.RoomExists(code.String()))
	assert.False(t, r.storage.CloseRoom(code.String()))

	_, err = r.storage.GetRoom(code.String())
	assert.ErrorIs(t, err, usecase_room.ErrRoomNotFound)
	assert.Equal(t, 0, r.storage.Count())
}

func TestStorageRoomUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(StorageRoomUnitSuite))
}
