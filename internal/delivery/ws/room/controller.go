package ws_room

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	http_common "github.com/humanbelnik/coordinator/internal/delivery/http/common"
	usecase_room "github.com/humanbelnik/coordinator/internal/usecase/room"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Controller struct {
	hub     *Hub
	usecase *usecase_room.Usecase
	logger  *slog.Logger
}

type ControllerOption func(*Controller)

func WithControllerLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func NewController(hub *Hub, usecase *usecase_room.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		hub:     hub,
		usecase: usecase,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/room/:room_code/ws", c.lobby)
}

// lobby upgrades the request and immediately sends the current room state.
func (c *Controller) lobby(ctx *gin.Context) {
	room, err := c.usecase.Status(ctx, ctx.Param("room_code"))
	if err != nil {
		http_common.Abort(ctx, c.logger, "lobby subscribe failed", err)
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.ErrorContext(ctx, "websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	client := newClient(c.hub, conn, room.Code)
	client.send <- lobbyEvent(room)
	if !c.hub.join(client) {
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
