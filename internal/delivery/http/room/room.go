package http_room

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/coordinator/internal/delivery/http/common"
	"github.com/humanbelnik/coordinator/internal/model"
	usecase_room "github.com/humanbelnik/coordinator/internal/usecase/room"
)

const (
	statusCreated = "created"
	statusJoined  = "joined"
	statusSynced  = "synced"
	statusSaved   = "questionnaire saved"
	statusClosed  = "closed"

	msgRoomExpired = "Room expired or not found"
)

type Controller struct {
	usecase *usecase_room.Usecase
	logger  *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase *usecase_room.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		usecase: usecase,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	rooms := router.Group("/room")
	{
		rooms.POST("", c.enter)
		rooms.GET("/:room_code", c.status)
		rooms.DELETE("/:room_code", c.close)
	}
	router.POST("/sync/:room_code/:user_id", c.sync)
	router.POST("/questionnaire/:room_code/:user_id", c.questionnaire)
}

type EnterRequestDTO struct {
	RoomCode *string `json:"room_code"`
}

type EnterResponseDTO struct {
	RoomCode string `json:"room_code"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

// enter creates a room when no code is given and joins one otherwise.
func (c *Controller) enter(ctx *gin.Context) {
	var req EnterRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		http_common.AbortBinding(ctx, c.logger, err)
		return
	}

	code := ""
	if req.RoomCode != nil {
		code = *req.RoomCode
	}

	entry, err := c.usecase.Enter(ctx, code)
	if err != nil {
		http_common.Abort(ctx, c.logger, "failed to enter room", err)
		return
	}

	status := statusJoined
	if entry.Role == usecase_room.RoleHost {
		status = statusCreated
	}
	ctx.JSON(http.StatusOK, EnterResponseDTO{
		RoomCode: entry.Code.String(),
		Role:     entry.Role,
		Status:   status,
	})
}

type StatusResponseDTO struct {
	RoomCode          string   `json:"room_code"`
	PartnersConnected int      `json:"partners_connected"`
	PartnerIDs        []string `json:"partner_ids"`
}

func FromRoom(room model.Room) StatusResponseDTO {
	return StatusResponseDTO{
		RoomCode:          room.Code.String(),
		PartnersConnected: room.Size(),
		PartnerIDs:        room.UserIDs(),
	}
}

func (c *Controller) status(ctx *gin.Context) {
	room, err := c.usecase.Status(ctx, ctx.Param("room_code"))
	if err != nil {
		http_common.Abort(ctx, c.logger, "failed to get room status", err)
		return
	}

	ctx.JSON(http.StatusOK, FromRoom(room))
}

type SyncResponseDTO struct {
	Status        string                    `json:"status"`
	PartnersReady int                       `json:"partners_ready"`
	YourData      http_common.SubmissionDTO `json:"your_data"`
}

func (c *Controller) sync(ctx *gin.Context) {
	var req http_common.SubmissionDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.AbortBinding(ctx, c.logger, err)
		return
	}

	size, err := c.usecase.Sync(ctx, ctx.Param("room_code"), ctx.Param("user_id"), req.ToModel())
	if err != nil {
		if errors.Is(err, usecase_room.ErrRoomNotFound) {
			ctx.AbortWithStatusJSON(http.StatusNotFound, http_common.ErrorResponse{Detail: msgRoomExpired})
			return
		}
		http_common.Abort(ctx, c.logger, "failed to sync", err)
		return
	}

	ctx.JSON(http.StatusOK, SyncResponseDTO{
		Status:        statusSynced,
		PartnersReady: size,
		YourData:      req,
	})
}

type QuestionnaireResponseDTO struct {
	Status string `json:"status"`
	Room   string `json:"room"`
	User   string `json:"user"`
}

func (c *Controller) questionnaire(ctx *gin.Context) {
	var req http_common.QuestionnaireDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.AbortBinding(ctx, c.logger, err)
		return
	}

	code, userID := ctx.Param("room_code"), ctx.Param("user_id")
	if err := c.usecase.SaveQuestionnaire(ctx, code, userID, req.ToModel()); err != nil {
		http_common.Abort(ctx, c.logger, "failed to save questionnaire", err)
		return
	}

	ctx.JSON(http.StatusOK, QuestionnaireResponseDTO{
		Status: statusSaved,
		Room:   model.NormalizeCode(code).String(),
		User:   userID,
	})
}

type CloseResponseDTO struct {
	Status string `json:"status"`
}

func (c *Controller) close(ctx *gin.Context) {
	if err := c.usecase.Close(ctx, ctx.Param("room_code")); err != nil {
		http_common.Abort(ctx, c.logger, "failed to close room", err)
		return
	}

	ctx.JSON(http.StatusOK, CloseResponseDTO{Status: statusClosed})
}
