package infra_ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/humanbelnik/coordinator/internal/model"
	usecase_collab "github.com/humanbelnik/coordinator/internal/usecase/collab"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type OllamaClientSuite struct {
	suite.Suite
}

func (s *OllamaClientSuite) TestGenerate(t provider.T) {
	t.Parallel()

	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"response":"once upon a time","done":false}`))
	}))
	defer srv.Close()

	req := usecase_collab.DefaultCompletionRequest()
	req.Prompt = "tell"
	req.Model = "dolphin-mistral"

	completion, err := New(srv.URL+"/").Generate(context.Background(), req)

	t.Require().NoError(err)
	assert.Equal(t, model.Completion{Text: "once upon a time", Model: "dolphin-mistral", Done: false}, completion)
	assert.False(t, got.Stream)
	assert.Equal(t, "tell", got.Prompt)
	assert.Equal(t, generateOptions{
		Temperature:   1.2,
		NumPredict:    4096,
		TopP:          0.95,
		TopK:          80,
		RepeatPenalty: 1.1,
		NumCtx:        16384,
	}, got.Options)
}

func (s *OllamaClientSuite) TestGenerateDoneDefaultsToTrue(t provider.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response":"x"}`))
	}))
	defer srv.Close()

	completion, err := New(srv.URL).Generate(context.Background(), model.CompletionRequest{Prompt: "p", Model: "m"})

	t.Require().NoError(err)
	assert.True(t, completion.Done)
}

func (s *OllamaClientSuite) TestTags(t provider.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		_, _ = w.Write([]byte(`{"models":[{"name":"dolphin-mistral:latest"},{"name":"llama3:8b"}]}`))
	}))
	defer srv.Close()

	tags, err := New(srv.URL).Tags(context.Background())

	t.Require().NoError(err)
	assert.Equal(t, []string{"dolphin-mistral:latest", "llama3:8b"}, tags)
}

func (s *OllamaClientSuite) TestCreateModel(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		status        int
		expectedError error
	}{
		{name: "Should create model", status: http.StatusOK},
		{name: "Should wrap upstream rejection", status: http.StatusBadRequest, expectedError: usecase_collab.ErrUpstream},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()

			var got createRequest
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/create", r.URL.Path)
				_ = json.NewDecoder(r.Body).Decode(&got)
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(`{"status":"success"}`))
			}))
			defer srv.Close()

			err := New(srv.URL).CreateModel(context.Background(), "mistral", "FROM \"/m/x.gguf\"\n")

			assert.Equal(t, createRequest{Model: "mistral", Modelfile: "FROM \"/m/x.gguf\"\n", Stream: false}, got)
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func (s *OllamaClientSuite) TestUnreachable(t provider.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url)

	_, err := c.Generate(context.Background(), model.CompletionRequest{Prompt: "p"})
	assert.ErrorIs(t, err, usecase_collab.ErrServiceUnavailable)

	err = c.Ping(context.Background())
	assert.ErrorIs(t, err, usecase_collab.ErrServiceUnavailable)
}

func (s *OllamaClientSuite) TestPingUpstreamError(t provider.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := New(srv.URL).Ping(context.Background())

	assert.ErrorIs(t, err, usecase_collab.ErrUpstream)
}

func TestOllamaClientSuite(t *testing.T) {
	suite.RunSuite(t, new(OllamaClientSuite))
}
