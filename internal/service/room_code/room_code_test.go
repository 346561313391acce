package room_code

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/humanbelnik/coordinator/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type RoomCodeUnitSuite struct {
	suite.Suite
}

func scripted(codes ...string) func() string {
	i := 0
	return func() string {
		c := codes[i%len(codes)]
		i++
		return c
	}
}

func (s *RoomCodeUnitSuite) TestNextShape(t provider.T) {
	t.Parallel()

	g, err := New()
	t.Require().NoError(err)

	for range 500 {
		code, err := g.Next(nil)
		t.Require().NoError(err)
		assert.Len(t, string(code), Length)
		assert.Equal(t, strings.ToUpper(string(code)), string(code))
		for _, r := range string(code) {
			assert.True(t, strings.ContainsRune(Alphabet, r), "unexpected symbol %q", r)
		}
	}
}

func (s *RoomCodeUnitSuite) TestNextReturnsWithDefaultSource(t provider.T) {
	t.Parallel()

	g := MustNew()
	done := make(chan model.RoomCode, 1)
	go func() {
		code, err := g.Next(nil)
		if err == nil {
			done <- code
		}
	}()

	select {
	case code := <-done:
		assert.Len(t, string(code), Length)
	case <-time.After(3 * time.Second):
		t.Require().True(false, "default source did not produce a code within 3s")
	}
}

func (s *RoomCodeUnitSuite) TestNextDistinctUnderContention(t provider.T) {
	t.Parallel()

	const n = 200
	g := MustNew()

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		codes = make(map[model.RoomCode]bool, n)
	)
	taken := func(c model.RoomCode) bool {
		return codes[c]
	}
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mu.Lock()
			defer mu.Unlock()
			code, err := g.Next(taken)
			if err == nil {
				codes[code] = true
			}
		}()
	}

	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		assert.Len(t, codes, n)
	case <-time.After(5 * time.Second):
		t.Require().True(false, "code generation did not finish within 5s")
	}
}

func (s *RoomCodeUnitSuite) TestNextSkipsTaken(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		source   []string
		taken    map[model.RoomCode]bool
		expected model.RoomCode
	}{
		{
			name:     "Should return first candidate when nothing is taken",
			source:   []string{"AB12", "CD34"},
			taken:    map[model.RoomCode]bool{},
			expected: "AB12",
		},
		{
			name:     "Should retry until candidate is free",
			source:   []string{"AB12", "CD34", "EF56"},
			taken:    map[model.RoomCode]bool{"AB12": true, "CD34": true},
			expected: "EF56",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			g := MustNew(WithSource(scripted(tc.source...)))

			code, err := g.Next(func(c model.RoomCode) bool { return tc.taken[c] })

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, code)
		})
	}
}

func (s *RoomCodeUnitSuite) TestNextExhausted(t provider.T) {
	t.Parallel()

	calls := 0
	g := MustNew(WithAttempts(8), WithSource(func() string {
		calls++
		return "ZZZZ"
	}))

	code, err := g.Next(func(model.RoomCode) bool { return true })

	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, model.EmptyRoomCode, code)
	assert.Equal(t, 8, calls)
}

func TestRoomCodeUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(RoomCodeUnitSuite))
}
