package http_common

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	usecase_collab "github.com/humanbelnik/coordinator/internal/usecase/collab"
	usecase_room "github.com/humanbelnik/coordinator/internal/usecase/room"
	usecase_scene "github.com/humanbelnik/coordinator/internal/usecase/scene"
)

const (
	MsgRoomNotFound = "Room not found"
	MsgInternal     = "internal error"
)

type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Status maps a usecase error to the HTTP status and message the client sees.
func Status(err error) (int, string) {
	switch {
	case errors.Is(err, usecase_room.ErrRoomNotFound):
		return http.StatusNotFound, MsgRoomNotFound
	case errors.Is(err, usecase_scene.ErrRoomEmpty):
		return http.StatusBadRequest, "Room empty or waiting for partner"
	case errors.Is(err, usecase_room.ErrRoomsUnavailable):
		return http.StatusServiceUnavailable, "no room codes available"
	case errors.Is(err, usecase_collab.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, usecase_collab.ErrModelFileNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, usecase_collab.ErrServiceUnavailable):
		return http.StatusServiceUnavailable, err.Error()
	case errors.Is(err, usecase_collab.ErrUpstream):
		return http.StatusInternalServerError, err.Error()
	default:
		return http.StatusInternalServerError, MsgInternal
	}
}

// Abort writes the mapped error and stops the handler chain.
func Abort(ctx *gin.Context, logger *slog.Logger, msg string, err error) {
	status, detail := Status(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, msg, slog.String("error", err.Error()))
	} else {
		logger.InfoContext(ctx, msg, slog.String("error", err.Error()))
	}
	ctx.AbortWithStatusJSON(status, ErrorResponse{Detail: detail})
}

// AbortBinding answers a request whose body failed to parse or validate.
func AbortBinding(ctx *gin.Context, logger *slog.Logger, err error) {
	logger.InfoContext(ctx, "invalid request", slog.String("error", err.Error()))
	ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
}
