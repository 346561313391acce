package ws_room

import (
	"context"
	"log/slog"
	"sync"

	"github.com/humanbelnik/coordinator/internal/model"
)

const (
	EventLobbyUpdate = "LOBBY_UPDATE"
	EventRoomClosed  = "ROOM_CLOSED"

	broadcastBuffer = 256
	clientBuffer    = 16
)

type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type LobbyPayload struct {
	RoomCode          string   `json:"room_code"`
	PartnersConnected int      `json:"partners_connected"`
	PartnerIDs        []string `json:"partner_ids"`
}

type ClosedPayload struct {
	RoomCode string `json:"room_code"`
}

func lobbyEvent(room model.Room) Event {
	return Event{
		Type: EventLobbyUpdate,
		Payload: LobbyPayload{
			RoomCode:          room.Code.String(),
			PartnersConnected: room.Size(),
			PartnerIDs:        room.UserIDs(),
		},
	}
}

type roomEvent struct {
	roomCode model.RoomCode
	event    Event
	closing  bool
}

// Hub fans room events out to every websocket watching that room. Only the
// Run goroutine mutates the maps; mu lets other goroutines read them.
type Hub struct {
	logger     *slog.Logger
	clients    map[*Client]bool
	rooms      map[model.RoomCode]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan roomEvent
	quit       chan struct{}
	done       chan struct{}
	stopOnce   sync.Once
	mu         sync.RWMutex
}

type HubOption func(*Hub)

func WithLogger(logger *slog.Logger) HubOption {
	return func(h *Hub) {
		h.logger = logger
	}
}

func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		logger:     slog.Default(),
		clients:    make(map[*Client]bool),
		rooms:      make(map[model.RoomCode]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan roomEvent, broadcastBuffer),
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case client := <-h.register:
			h.handleRegister(client)

		case client := <-h.unregister:
			h.handleUnregister(client)

		case ev := <-h.broadcast:
			h.broadcastToRoom(ev.roomCode, ev.event)
			if ev.closing {
				h.dropRoom(ev.roomCode)
			}

		case <-h.quit:
			h.dropAll()
			return
		}
	}
}

// Stop ends Run and closes every client. It waits for Run to finish or ctx
// to expire.
func (h *Hub) Stop(ctx context.Context) error {
	h.stopOnce.Do(func() { close(h.quit) })

	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Connections counts the sockets watching a room.
func (h *Hub) Connections(code model.RoomCode) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[code])
}

func (h *Hub) RoomUpdated(room model.Room) {
	h.publish(roomEvent{roomCode: room.Code, event: lobbyEvent(room)})
}

func (h *Hub) RoomClosed(code model.RoomCode) {
	h.publish(roomEvent{
		roomCode: code,
		event:    Event{Type: EventRoomClosed, Payload: ClosedPayload{RoomCode: code.String()}},
		closing:  true,
	})
}

func (h *Hub) publish(ev roomEvent) {
	select {
	case h.broadcast <- ev:
	case <-h.quit:
	default:
		h.logger.Warn("hub backlog full, event dropped",
			"room", ev.roomCode,
			"type", ev.event.Type)
	}
}

func (h *Hub) handleRegister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	if _, exists := h.rooms[client.roomCode]; !exists {
		h.rooms[client.roomCode] = make(map[*Client]bool)
	}
	h.rooms[client.roomCode][client] = true

	h.logger.Info("client registered",
		"client_id", client.id,
		"room", client.roomCode)
}

func (h *Hub) handleUnregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(client)

	h.logger.Info("client unregistered",
		"client_id", client.id,
		"room", client.roomCode)
}

func (h *Hub) removeLocked(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)

	if roomClients, exists := h.rooms[client.roomCode]; exists {
		delete(roomClients, client)
		if len(roomClients) == 0 {
			delete(h.rooms, client.roomCode)
		}
	}
}

func (h *Hub) broadcastToRoom(code model.RoomCode, event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.rooms[code] {
		select {
		case client.send <- event:
		default:
			h.logger.Warn("slow client dropped", "client_id", client.id, "room", code)
			h.removeLocked(client)
		}
	}
}

func (h *Hub) dropRoom(code model.RoomCode) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.rooms[code] {
		h.removeLocked(client)
	}
}

func (h *Hub) dropAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		h.removeLocked(client)
	}
}
