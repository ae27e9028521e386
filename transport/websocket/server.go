package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/jeopardy-backend/internal/entity"
	"github.com/rocketscienceinc/jeopardy-backend/internal/jeopardy"
	"github.com/rocketscienceinc/jeopardy-backend/internal/usecase"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 4096
)

type gameUseCase interface {
	Start(ctx context.Context, player *entity.Player, topic string) (jeopardy.View, error)
	State(ctx context.Context, player *entity.Player) jeopardy.View
	Reveal(ctx context.Context, player *entity.Player, at entity.Coord) (jeopardy.View, error)
	Wager(ctx context.Context, player *entity.Player, amount int) (jeopardy.View, error)
	Answer(ctx context.Context, player *entity.Player, answer string) (jeopardy.View, error)
	Skip(ctx context.Context, player *entity.Player) (jeopardy.View, error)
	Reset(ctx context.Context, player *entity.Player) *entity.GameResult
	OnDismiss(listener usecase.DismissListener)
}

// PlayerFunc resolves the player of an upgrade request.
type PlayerFunc func(r *http.Request) *entity.Player

type handler func(ctx context.Context, msg *Message, c *client) error

type Server struct {
	logger   *slog.Logger
	games    gameUseCase
	identify PlayerFunc
	upgrader websocket.Upgrader

	connectionsMutex sync.RWMutex
	connections      map[string]map[*client]struct{}

	handlers map[string]handler
}

func New(logger *slog.Logger, games gameUseCase, identify PlayerFunc) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		games:    games,
		identify: identify,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		connections: make(map[string]map[*client]struct{}),
		handlers:    make(map[string]handler),
	}

	server.handlers[ActionGameStart] = server.handleStart
	server.handlers[ActionGameState] = server.handleState
	server.handlers[ActionGameReset] = server.handleReset
	server.handlers[ActionClueReveal] = server.handleReveal
	server.handlers[ActionClueWager] = server.handleWager
	server.handlers[ActionClueAnswer] = server.handleAnswer
	server.handlers[ActionClueSkip] = server.handleSkip

	games.OnDismiss(server.pushDismissed)

	return server
}

// client is one socket. Writes are serialized because dismissals are pushed from timer goroutines.
type client struct {
	conn   *websocket.Conn
	player *entity.Player

	writeMu sync.Mutex
}

func (that *client) send(msg Message) error {
	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	if err := that.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err := that.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *client) ping() error {
	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	return that.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// ServeHTTP upgrades the connection and processes messages until the client goes away.
func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	player := that.identify(r)
	if player == nil {
		http.Error(w, "unknown player", http.StatusUnauthorized)
		return
	}

	// Cookies set by the auth middleware are not part of the hijacked response otherwise.
	var header http.Header
	if cookies := w.Header().Values("Set-Cookie"); len(cookies) > 0 {
		header = http.Header{"Set-Cookie": cookies}
	}

	conn, err := that.upgrader.Upgrade(w, r, header)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := &client{conn: conn, player: player}
	that.register(c)

	defer func() {
		that.unregister(c)
		conn.Close()
	}()

	log = log.With("player", player.ID)
	log.Info("WebSocket connection established")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go that.keepAlive(ctx, c)

	if err = that.handleMessages(ctx, c); err != nil {
		log.Info("connection closed", "reason", err)
	}
}

func (that *Server) handleMessages(ctx context.Context, c *client) error {
	log := that.logger.With("method", "handleMessages", "player", c.player.ID)

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return err
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			_ = that.sendError(c, ActionError, "malformed message", "validation")
			continue
		}

		handle, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			_ = that.sendError(c, message.Action, "unknown action", "validation")
			continue
		}

		if err = handle(ctx, &message, c); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

func (that *Server) keepAlive(ctx context.Context, c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.ping(); err != nil {
				return
			}
		}
	}
}

func (that *Server) register(c *client) {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	clients, ok := that.connections[c.player.ID]
	if !ok {
		clients = make(map[*client]struct{})
		that.connections[c.player.ID] = clients
	}
	clients[c] = struct{}{}
}

func (that *Server) unregister(c *client) {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	clients := that.connections[c.player.ID]
	delete(clients, c)
	if len(clients) == 0 {
		delete(that.connections, c.player.ID)
	}
}

// pushDismissed tells every socket of the player that the feedback is gone.
func (that *Server) pushDismissed(player *entity.Player, feedback jeopardy.Feedback) {
	log := that.logger.With("method", "pushDismissed", "player", player.ID)

	that.connectionsMutex.RLock()
	clients := make([]*client, 0, len(that.connections[player.ID]))
	for c := range that.connections[player.ID] {
		clients = append(clients, c)
	}
	that.connectionsMutex.RUnlock()

	for _, c := range clients {
		if err := that.sendMessage(c, ActionClueDismissed, ResponsePayload{Feedback: &feedback}); err != nil {
			log.Error("failed to push dismissal", "error", err)
		}
	}
}

func (that *Server) sendMessage(c *client, action string, payload ResponsePayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	return c.send(Message{Action: action, Payload: raw})
}

func (that *Server) sendError(c *client, action, msg, code string) error {
	return that.sendMessage(c, action, ResponsePayload{Error: msg, Code: code})
}
