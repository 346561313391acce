package http_static

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/coordinator/internal/delivery/http/common"
)

const (
	apiPrefix = "/api/"
	indexFile = "index.html"
)

// Site serves a single page client from dir. Unknown paths fall back to
// index.html so client side routing works.
type Site struct {
	dir string
}

// New returns nil when dir does not exist.
func New(dir string) *Site {
	if dir == "" {
		return nil
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil
	}
	return &Site{dir: dir}
}

func notFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Detail: "Not Found"})
}

// NotFound is the fallback when no client is hosted.
func NotFound() gin.HandlerFunc {
	return notFound
}

func (s *Site) Handler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		method := ctx.Request.Method
		if (method != http.MethodGet && method != http.MethodHead) ||
			strings.HasPrefix(ctx.Request.URL.Path, apiPrefix) {
			notFound(ctx)
			return
		}

		rel := path.Clean("/" + ctx.Request.URL.Path)
		full := filepath.Join(s.dir, filepath.FromSlash(rel))
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			ctx.File(full)
			return
		}

		ctx.File(filepath.Join(s.dir, indexFile))
	}
}
