package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	http_common "github.com/humanbelnik/coordinator/internal/delivery/http/common"
	http_room "github.com/humanbelnik/coordinator/internal/delivery/http/room"
	http_scene "github.com/humanbelnik/coordinator/internal/delivery/http/scene"
	ws_room "github.com/humanbelnik/coordinator/internal/delivery/ws/room"
)

const apiPrefix = "/api"

var ErrRoomNotFound = errors.New("room not found")

// APIError is a non-2xx answer from the coordinator.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("coordinator: %d %s", e.Status, e.Detail)
}

func (e *APIError) Unwrap() error {
	if e.Status == http.StatusNotFound {
		return ErrRoomNotFound
	}
	return nil
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	dialer     *websocket.Dialer
	logger     *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(cl *Client) {
		cl.logger = logger
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		dialer:     websocket.DefaultDialer,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) CreateRoom(ctx context.Context) (http_room.EnterResponseDTO, error) {
	var resp http_room.EnterResponseDTO
	err := c.do(ctx, http.MethodPost, "/room", http_room.EnterRequestDTO{}, &resp)
	return resp, err
}

func (c *Client) JoinRoom(ctx context.Context, code string) (http_room.EnterResponseDTO, error) {
	var resp http_room.EnterResponseDTO
	err := c.do(ctx, http.MethodPost, "/room", http_room.EnterRequestDTO{RoomCode: &code}, &resp)
	return resp, err
}

func (c *Client) Status(ctx context.Context, code string) (http_room.StatusResponseDTO, error) {
	var resp http_room.StatusResponseDTO
	err := c.do(ctx, http.MethodGet, "/room/"+url.PathEscape(code), nil, &resp)
	return resp, err
}

func (c *Client) Sync(ctx context.Context, code string, userID string, sub http_common.SubmissionDTO) (http_room.SyncResponseDTO, error) {
	var resp http_room.SyncResponseDTO
	err := c.do(ctx, http.MethodPost, "/sync/"+url.PathEscape(code)+"/"+url.PathEscape(userID), sub, &resp)
	return resp, err
}

func (c *Client) SaveQuestionnaire(ctx context.Context, code string, userID string, q http_common.QuestionnaireDTO) error {
	return c.do(ctx, http.MethodPost, "/questionnaire/"+url.PathEscape(code)+"/"+url.PathEscape(userID), q, nil)
}

func (c *Client) CloseRoom(ctx context.Context, code string) error {
	return c.do(ctx, http.MethodDelete, "/room/"+url.PathEscape(code), nil, nil)
}

func (c *Client) Generate(ctx context.Context, code string) (http_scene.GenerateResponseDTO, error) {
	var resp http_scene.GenerateResponseDTO
	err := c.do(ctx, http.MethodPost, "/generate/"+url.PathEscape(code), http_scene.GenerateRequestDTO{}, &resp)
	return resp, err
}

func (c *Client) GenerateSolo(ctx context.Context, sub http_common.SubmissionDTO) (http_scene.GenerateResponseDTO, error) {
	var resp http_scene.GenerateResponseDTO
	req := http_scene.GenerateRequestDTO{Solo: true, UserData: &sub}
	err := c.do(ctx, http.MethodPost, "/generate/solo", req, &resp)
	return resp, err
}

func (c *Client) do(ctx context.Context, method string, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e http_common.ErrorResponse
		raw, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(raw, &e) != nil || e.Detail == "" {
			e.Detail = strings.TrimSpace(string(raw))
		}
		return &APIError{Status: resp.StatusCode, Detail: e.Detail}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Update is one lobby event. Closed is set on the last update of a room.
type Update struct {
	Lobby  ws_room.LobbyPayload
	Closed bool
}

type wireEvent struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Watch streams lobby updates for the room until ctx is done, the room is
// closed or the connection drops. The channel is closed on return.
func (c *Client) Watch(ctx context.Context, code string) (<-chan Update, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimRight(u.Path, "/") + apiPrefix + "/room/" + url.PathEscape(code) + "/ws"

	conn, resp, err := c.dialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, &APIError{Status: resp.StatusCode, Detail: http_common.MsgRoomNotFound}
		}
		return nil, fmt.Errorf("websocket connection failed: %w", err)
	}

	updates := make(chan Update)
	stop := context.AfterFunc(ctx, func() { conn.Close() })

	go func() {
		defer close(updates)
		defer stop()
		defer conn.Close()

		for {
			var ev wireEvent
			if err := conn.ReadJSON(&ev); err != nil {
				if ctx.Err() == nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
					c.logger.Debug("lobby stream ended", slog.String("error", err.Error()))
				}
				return
			}

			var up Update
			switch ev.Type {
			case ws_room.EventLobbyUpdate:
				if err := json.Unmarshal(ev.Payload, &up.Lobby); err != nil {
					c.logger.Warn("malformed lobby event", slog.String("error", err.Error()))
					continue
				}
			case ws_room.EventRoomClosed:
				var closed ws_room.ClosedPayload
				if err := json.Unmarshal(ev.Payload, &closed); err != nil {
					closed.RoomCode = code
				}
				up.Closed = true
				up.Lobby.RoomCode = closed.RoomCode
			default:
				continue
			}

			select {
			case updates <- up:
			case <-ctx.Done():
				return
			}
			if up.Closed {
				return
			}
		}
	}()

	return updates, nil
}
