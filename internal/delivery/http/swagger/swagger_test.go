package http_swagger

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type HTTPSwaggerSuite struct {
	suite.Suite
}

func (s *HTTPSwaggerSuite) TestDocJSON(t provider.T) {
	engine := gin.New()
	New().RegisterRoutes(engine.Group("/api"))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/swagger/doc.json", nil))

	t.Require().Equal(http.StatusOK, w.Code)

	var doc struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	t.Require().NoError(json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "/api", doc.BasePath)
	assert.Contains(t, doc.Paths, "/room")
	assert.Contains(t, doc.Paths["/room/{room_code}"], "delete")
	assert.Contains(t, doc.Paths, "/generate/{room_code}")
}

func (s *HTTPSwaggerSuite) TestUI(t provider.T) {
	engine := gin.New()
	New().RegisterRoutes(engine.Group("/api"))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/swagger/index.html", nil))

	t.Require().Equal(http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `docExpansion: "list"`)
}

func TestHTTPSwaggerSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.RunSuite(t, new(HTTPSwaggerSuite))
}
