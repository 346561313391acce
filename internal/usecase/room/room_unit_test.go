package usecase_room

import (
	"context"
	"testing"

	"github.com/humanbelnik/coordinator/internal/model"
	notifier_mocks "github.com/humanbelnik/coordinator/internal/usecase/room/mocks/room/notifier"
	store_mocks "github.com/humanbelnik/coordinator/internal/usecase/room/mocks/room/store"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseRoomUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase  *Usecase
	store    *store_mocks.RoomStore
	notifier *notifier_mocks.Notifier
	ctx      context.Context
}

func initResources(t provider.T) *resources {
	store := store_mocks.NewRoomStore(t)
	notifier := notifier_mocks.NewNotifier(t)

	return &resources{
		usecase:  New(store, WithNotifier(notifier)),
		store:    store,
		notifier: notifier,
		ctx:      context.Background(),
	}
}

func validRoom() model.Room {
	return model.Room{
		Code: "AB12",
		Members: []model.Member{
			{UserID: "u1", Submission: model.Submission{Role: model.RoleDom, Intensity: model.IntensityCasual}},
		},
	}
}

func (s *UsecaseRoomUnitSuite) TestEnter(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		code          string
		setupMocks    func(r *resources)
		expected      Entry
		expectedError error
	}{
		{
			name: "Should create room when no code is given",
			code: "",
			setupMocks: func(r *resources) {
				r.store.On("CreateRoom").Return(model.RoomCode("AB12"), nil).Once()
			},
			expected: Entry{Code: "AB12", Role: RoleHost},
		},
		{
			name: "Should surface exhausted code space",
			code: "",
			setupMocks: func(r *resources) {
				r.store.On("CreateRoom").Return(model.EmptyRoomCode, ErrRoomsUnavailable).Once()
			},
			expectedError: ErrRoomsUnavailable,
		},
		{
			name: "Should join existing room and notify the lobby",
			code: "ab12",
			setupMocks: func(r *resources) {
				r.store.On("GetRoom", "ab12").Return(validRoom(), nil).Once()
				r.notifier.On("RoomUpdated", validRoom()).Once()
			},
			expected: Entry{Code: "AB12", Role: RolePartner},
		},
		{
			name: "Should return not found for unknown code",
			code: "ZZZZ",
			setupMocks: func(r *resources) {
				r.store.On("GetRoom", "ZZZZ").Return(model.Room{}, ErrRoomNotFound).Once()
			},
			expectedError: ErrRoomNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			entry, err := r.usecase.Enter(r.ctx, tc.code)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, entry)
		})
	}
}

func (s *UsecaseRoomUnitSuite) TestSync(t provider.T) {
	t.Parallel()

	sub := model.Submission{Role: model.RoleSub, Intensity: "unheard-of", Inventory: []string{"x"}}

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expected      int
		expectedError error
	}{
		{
			name: "Should store submission and publish snapshot",
			setupMocks: func(r *resources) {
				r.store.On("PutSubmission", "AB12", "u2", sub).Return(2, nil).Once()
				r.store.On("GetRoom", "AB12").Return(validRoom(), nil).Once()
				r.notifier.On("RoomUpdated", validRoom()).Once()
			},
			expected: 2,
		},
		{
			name: "Should not publish when room is missing",
			setupMocks: func(r *resources) {
				r.store.On("PutSubmission", "AB12", "u2", sub).Return(0, ErrRoomNotFound).Once()
			},
			expectedError: ErrRoomNotFound,
		},
		{
			name: "Should tolerate room closed before publish",
			setupMocks: func(r *resources) {
				r.store.On("PutSubmission", "AB12", "u2", sub).Return(1, nil).Once()
				r.store.On("GetRoom", "AB12").Return(model.Room{}, ErrRoomNotFound).Once()
			},
			expected: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			size, err := r.usecase.Sync(r.ctx, "AB12", "u2", sub)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, size)
		})
	}
}

func (s *UsecaseRoomUnitSuite) TestSaveQuestionnaire(t provider.T) {
	t.Parallel()

	theme := "cabin"
	q := model.Questionnaire{Theme: &theme}

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expectedError error
	}{
		{
			name: "Should merge questionnaire and publish snapshot",
			setupMocks: func(r *resources) {
				r.store.On("MergeQuestionnaire", "AB12", "u1", q).Return(nil).Once()
				r.store.On("GetRoom", "AB12").Return(validRoom(), nil).Once()
				r.notifier.On("RoomUpdated", mock.AnythingOfType("model.Room")).Once()
			},
		},
		{
			name: "Should return not found for unknown room",
			setupMocks: func(r *resources) {
				r.store.On("MergeQuestionnaire", "AB12", "u1", q).Return(ErrRoomNotFound).Once()
			},
			expectedError: ErrRoomNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			err := r.usecase.SaveQuestionnaire(r.ctx, "AB12", "u1", q)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func (s *UsecaseRoomUnitSuite) TestClose(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expectedError error
	}{
		{
			name: "Should close room and notify with normalized code",
			setupMocks: func(r *resources) {
				r.store.On("CloseRoom", "ab12").Return(true).Once()
				r.notifier.On("RoomClosed", model.RoomCode("AB12")).Once()
			},
		},
		{
			name: "Should return not found for unknown room",
			setupMocks: func(r *resources) {
				r.store.On("CloseRoom", "ab12").Return(false).Once()
			},
			expectedError: ErrRoomNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			err := r.usecase.Close(r.ctx, "ab12")

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func (s *UsecaseRoomUnitSuite) TestStatus(t provider.T) {
	t.Parallel()
	r := initResources(t)
	r.store.On("GetRoom", "AB12").Return(validRoom(), nil).Once()

	room, err := r.usecase.Status(r.ctx, "AB12")

	assert.NoError(t, err)
	assert.Equal(t, []string{"u1"}, room.UserIDs())
}

func TestUsecaseRoomUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseRoomUnitSuite))
}
