// Package support drives the live support chat: one session at a time over
// the shared socket, with server-pushed history reconciled against messages
// that already arrived live.
package support

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/lumeapp/sync-client/internal/config"
	"github.com/lumeapp/sync-client/internal/model"
	"github.com/lumeapp/sync-client/internal/pkg/validator"
	"github.com/lumeapp/sync-client/internal/socket"
)

type Message struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"sender_id"`
	FromAgent bool      `json:"from_agent"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type Session struct {
	router    EventRouter
	sanitizer Sanitizer
	valid     *validator.Validator
	clock     clock.Clock

	peerExpiry time.Duration

	mu          sync.Mutex
	session     model.SupportSession
	messages    []Message
	known       map[string]struct{}
	agentTyping time.Time
	started     bool
	ended       bool
	lastErr     string
	unsubs      []func()
}

func NewSession(cfg *config.Config, router EventRouter, sanitizer Sanitizer, clk clock.Clock) *Session {
	return &Session{
		router:     router,
		sanitizer:  sanitizer,
		valid:      validator.New(),
		clock:      clk,
		peerExpiry: cfg.Typing.PeerExpiry,
		known:      make(map[string]struct{}),
	}
}

// Start subscribes to the support:* events and announces the session. The
// returned error covers the emit only; session-started arrives async.
func (s *Session) Start(topic string) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = true

	s.unsubs = append(s.unsubs,
		s.router.Subscribe(socket.OpSupportSessionStarted, s.onSessionStarted),
		s.router.Subscribe(socket.OpSupportMessage, s.onMessage),
		s.router.Subscribe(socket.OpSupportMessageHistory, s.onHistory),
		s.router.Subscribe(socket.OpSupportAgentJoined, s.onAgentJoined),
		s.router.Subscribe(socket.OpSupportAgentLeft, s.onAgentLeft),
		s.router.Subscribe(socket.OpSupportAgentTyping, s.onAgentTyping),
		s.router.Subscribe(socket.OpSupportSessionEnded, s.onSessionEnded),
		s.router.Subscribe(socket.OpSupportError, s.onError),
	)
	s.mu.Unlock()

	if err := s.router.Emit(socket.OpSupportStart, map[string]string{"topic": topic}); err != nil {
		return fmt.Errorf("failed to start support session: %w", err)
	}

	return nil
}

// Teardown removes every listener. Safe to call more than once.
func (s *Session) Teardown() {
	s.mu.Lock()
	unsubs := s.unsubs
	s.unsubs = nil
	s.mu.Unlock()

	for _, unsub := range unsubs {
		unsub()
	}
}

func (s *Session) Send(content string) error {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	if err := s.router.Emit(socket.OpSupportMessage, map[string]string{"content": content}); err != nil {
		return fmt.Errorf("failed to send support message: %w", err)
	}

	return nil
}

func (s *Session) SetTyping(typing bool) error {
	return s.router.Emit(socket.OpSupportTyping, map[string]bool{"typing": typing})
}

func (s *Session) End() error {
	if err := s.router.Emit(socket.OpSupportEnd, nil); err != nil {
		return fmt.Errorf("failed to end support session: %w", err)
	}

	return nil
}

// SubmitReview validates the 1-5 rating locally; an invalid rating never
// produces an emit.
func (s *Session) SubmitReview(rating int, comment string) error {
	s.mu.Lock()
	sessionID := s.session.ID
	s.mu.Unlock()

	review := &model.SupportReview{SessionID: sessionID, Rating: rating, Comment: comment}
	if err := s.valid.ValidateReview(review); err != nil {
		return err
	}

	if err := s.router.Emit(socket.OpSupportReview, review); err != nil {
		return fmt.Errorf("failed to submit review: %w", err)
	}

	return nil
}

func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Session) AgentTyping() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock.Now().Before(s.agentTyping)
}

func (s *Session) Info() (model.SupportSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session, s.session.ID != ""
}

func (s *Session) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ended
}

func (s *Session) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Session) onSessionStarted(event socket.Event) {
	var session model.SupportSession
	if err := json.Unmarshal(event.Data, &session); err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
}

func (s *Session) onMessage(event socket.Event) {
	var msg Message
	if err := json.Unmarshal(event.Data, &msg); err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendLocked(msg)

	if msg.FromAgent {
		s.agentTyping = time.Time{}
	}
}

// onHistory merges the server-pushed backlog. Messages that already arrived
// live are skipped by id; the rest land in front, preserving server order.
func (s *Session) onHistory(event socket.Event) {
	var history []Message
	if err := json.Unmarshal(event.Data, &history); err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fresh := make([]Message, 0, len(history))
	for _, msg := range history {
		if _, dup := s.known[msg.ID]; dup {
			continue
		}
		msg.Content = s.sanitizer.HTML(msg.Content)
		s.known[msg.ID] = struct{}{}
		fresh = append(fresh, msg)
	}

	s.messages = append(fresh, s.messages...)
}

func (s *Session) appendLocked(msg Message) {
	if _, dup := s.known[msg.ID]; dup {
		return
	}

	msg.Content = s.sanitizer.HTML(msg.Content)
	s.known[msg.ID] = struct{}{}
	s.messages = append(s.messages, msg)
}

func (s *Session) onAgentJoined(event socket.Event) {
	var data struct {
		AgentID   string `json:"agent_id"`
		AgentName string `json:"agent_name"`
	}
	if err := json.Unmarshal(event.Data, &data); err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.AgentID = data.AgentID
	s.session.AgentName = data.AgentName
}

func (s *Session) onAgentLeft(socket.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.AgentID = ""
	s.session.AgentName = ""
	s.agentTyping = time.Time{}
}

func (s *Session) onAgentTyping(event socket.Event) {
	var data struct {
		Typing bool `json:"typing"`
	}
	if err := json.Unmarshal(event.Data, &data); err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if data.Typing {
		s.agentTyping = s.clock.Now().Add(s.peerExpiry)
	} else {
		s.agentTyping = time.Time{}
	}
}

func (s *Session) onSessionEnded(socket.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ended = true
	s.session.EndedAt = s.clock.Now()
}

func (s *Session) onError(event socket.Event) {
	var data socket.ErrorData
	if err := json.Unmarshal(event.Data, &data); err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = data.Message
}
