// Package socket maintains the single shared realtime connection and fans
// incoming events out to per-feature subscribers. Rooms joined through the
// router are re-joined after every reconnect; the transport does not
// remember them.
package socket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lumeapp/sync-client/internal/config"
)

type Handler func(event Event)

type TokenProvider interface {
	Tokens(ctx context.Context) (access string, refresh string, err error)
}

type Router struct {
	url               string
	handshakeTimeout  time.Duration
	reconnectInterval time.Duration
	pingInterval      time.Duration
	tokens            TokenProvider

	mu       sync.RWMutex
	conn     *websocket.Conn
	writeMu  sync.Mutex
	handlers map[string]map[int]Handler
	nextID   int
	rooms    map[string]struct{}
}

func New(cfg *config.Config, tokens TokenProvider) *Router {
	return &Router{
		url:               cfg.Socket.URL,
		handshakeTimeout:  cfg.Socket.HandshakeTimeout,
		reconnectInterval: cfg.Socket.ReconnectInterval,
		pingInterval:      cfg.Socket.PingInterval,
		tokens:            tokens,
		handlers:          make(map[string]map[int]Handler),
		rooms:             make(map[string]struct{}),
	}
}

// Subscribe registers a handler for the named op and returns its removal
// func. Every subscriber must call it on teardown; the router holds the
// handler until then.
func (r *Router) Subscribe(op string, h Handler) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.handlers[op] == nil {
		r.handlers[op] = make(map[int]Handler)
	}

	id := r.nextID
	r.nextID++
	r.handlers[op][id] = h

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.handlers[op], id)
	}
}

func (r *Router) Emit(op string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	return r.write(Event{Op: op, Data: raw})
}

func (r *Router) write(event Event) error {
	r.mu.RLock()
	conn := r.conn
	r.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("socket is not connected")
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	if err := conn.WriteJSON(event); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	return nil
}

// JoinRoom records the room and announces it when connected. The record is
// what makes re-join after reconnect possible.
func (r *Router) JoinRoom(roomID string) error {
	r.mu.Lock()
	r.rooms[roomID] = struct{}{}
	connected := r.conn != nil
	r.mu.Unlock()

	if !connected {
		return nil
	}

	return r.Emit(OpGroupJoin, RoomRef{RoomID: roomID})
}

func (r *Router) LeaveRoom(roomID string) error {
	r.mu.Lock()
	delete(r.rooms, roomID)
	connected := r.conn != nil
	r.mu.Unlock()

	if !connected {
		return nil
	}

	return r.Emit(OpGroupLeave, RoomRef{RoomID: roomID})
}

func (r *Router) Connected() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.conn != nil
}

// Run dials and serves the connection until ctx is cancelled, redialing
// after reconnectInterval on every drop. Each successful dial re-joins all
// held rooms before events flow.
func (r *Router) Run(ctx context.Context) error {
	for {
		if err := r.connectAndServe(ctx); err != nil {
			r.dispatchLocal(OpError, ErrorData{Message: err.Error()})
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.reconnectInterval):
		}
	}
}

func (r *Router) connectAndServe(ctx context.Context) error {
	access, _, err := r.tokens.Tokens(ctx)
	if err != nil {
		return fmt.Errorf("failed to load credentials: %w", err)
	}

	dialer := &websocket.Dialer{HandshakeTimeout: r.handshakeTimeout}
	header := http.Header{}
	if access != "" {
		header.Set("Cookie", "token="+access)
	}

	conn, resp, err := dialer.DialContext(ctx, r.url, header)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("failed to dial socket (status %d): %w", resp.StatusCode, err)
		}
		return fmt.Errorf("failed to dial socket: %w", err)
	}

	r.mu.Lock()
	r.conn = conn
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.conn = nil
		r.mu.Unlock()
		_ = conn.Close()
		r.dispatchLocal(OpDisconnected, nil)
	}()

	r.dispatchLocal(OpConnected, nil)

	if err := r.restoreRooms(); err != nil {
		return err
	}

	pingCtx, stopPing := context.WithCancel(ctx)
	defer stopPing()
	go r.pingLoop(pingCtx, conn)

	// Watch ctx so a cancelled run unblocks ReadMessage promptly.
	go func() {
		<-pingCtx.Done()
		_ = conn.SetReadDeadline(time.Now())
	}()

	return r.readLoop(ctx, conn)
}

// restoreRooms re-announces every held room on a fresh connection.
func (r *Router) restoreRooms() error {
	r.mu.RLock()
	rooms := make([]string, 0, len(r.rooms))
	for roomID := range r.rooms {
		rooms = append(rooms, roomID)
	}
	r.mu.RUnlock()

	for _, roomID := range rooms {
		if err := r.Emit(OpGroupJoin, RoomRef{RoomID: roomID}); err != nil {
			return fmt.Errorf("failed to restore room %s: %w", roomID, err)
		}
	}

	return nil
}

func (r *Router) pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(r.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.writeMu.Lock()
			err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second))
			r.writeMu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

// readLoop dispatches events one at a time, in arrival order. Handlers run
// on this goroutine; slow handlers delay later events rather than reorder
// them.
func (r *Router) readLoop(ctx context.Context, conn *websocket.Conn) error {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("socket read failed: %w", err)
		}

		var event Event
		if err := json.Unmarshal(raw, &event); err != nil {
			continue
		}

		r.dispatch(event)
	}
}

func (r *Router) dispatch(event Event) {
	r.mu.RLock()
	handlers := make([]Handler, 0, len(r.handlers[event.Op]))
	for _, h := range r.handlers[event.Op] {
		handlers = append(handlers, h)
	}
	r.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
}

func (r *Router) dispatchLocal(op string, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		return
	}

	r.dispatch(Event{Op: op, Data: raw})
}
