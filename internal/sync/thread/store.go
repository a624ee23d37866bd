// Package thread is the single source of truth for per-thread message
// state: ordered messages, unread counts, typing indicators and member
// presence, reconciled between socket pushes and REST history pages.
package thread

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/lumeapp/sync-client/internal/config"
	"github.com/lumeapp/sync-client/internal/model"
	"github.com/lumeapp/sync-client/internal/pkg/validator"
	"github.com/lumeapp/sync-client/internal/socket"
)

const historyPageSize = 30

type Store struct {
	router    EventRouter
	history   HistoryClient
	cache     MessageCache
	sanitizer Sanitizer
	clock     clock.Clock
	selfID    uuid.UUID

	debounce   time.Duration
	stopAfter  time.Duration
	peerExpiry time.Duration

	mu      sync.Mutex
	threads map[string]*threadState
	unsubs  []func()
}

type threadState struct {
	thread   model.Thread
	messages model.MessageList
	known    map[uuid.UUID]struct{}
	cursor   string
	hasMore  bool
	loading  bool
	typing   map[string]time.Time
	emitter  *typingEmitter
}

func NewStore(cfg *config.Config, router EventRouter, history HistoryClient, cache MessageCache, sanitizer Sanitizer, selfID uuid.UUID, clk clock.Clock) *Store {
	return &Store{
		router:     router,
		history:    history,
		cache:      cache,
		sanitizer:  sanitizer,
		clock:      clk,
		selfID:     selfID,
		debounce:   cfg.Typing.Debounce,
		stopAfter:  cfg.Typing.StopAfter,
		peerExpiry: cfg.Typing.PeerExpiry,
		threads:    make(map[string]*threadState),
	}
}

// Start wires the store into the router. It must run before any thread is
// opened and is undone by Stop.
func (s *Store) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.unsubs = append(s.unsubs,
		s.router.Subscribe(socket.OpGroupMessage, s.onMessage),
		s.router.Subscribe(socket.OpGroupTyping, s.onTyping),
		s.router.Subscribe(socket.OpGroupMemberState, s.onMemberState),
		s.router.Subscribe(socket.OpConnected, s.onConnected),
		s.router.Subscribe(socket.OpDisconnected, s.onDisconnected),
	)
}

func (s *Store) Stop() {
	s.mu.Lock()
	unsubs := s.unsubs
	s.unsubs = nil
	threads := s.threads
	s.threads = make(map[string]*threadState)
	s.mu.Unlock()

	for _, unsub := range unsubs {
		unsub()
	}
	for _, st := range threads {
		st.emitter.Cancel()
	}
}

// Open registers a thread and joins its room. Opening an already open
// thread is a no-op.
func (s *Store) Open(ctx context.Context, threadID, threadType string) error {
	s.mu.Lock()
	if _, ok := s.threads[threadID]; ok {
		s.mu.Unlock()
		return nil
	}

	st := &threadState{
		thread:  model.Thread{ID: threadID, Type: threadType},
		known:   make(map[uuid.UUID]struct{}),
		hasMore: true,
		typing:  make(map[string]time.Time),
	}
	st.emitter = newTypingEmitter(s.clock, s.debounce, s.stopAfter, func(typing bool) {
		_ = s.router.Emit(socket.OpGroupTyping, socket.TypingData{RoomID: threadID, Typing: typing})
	})
	s.threads[threadID] = st
	s.mu.Unlock()

	if s.cache != nil {
		if cached, err := s.cache.LoadMessages(ctx, threadID, historyPageSize); err == nil && len(cached) > 0 {
			s.mu.Lock()
			if st, ok := s.threads[threadID]; ok {
				s.mergeLocked(st, cached, false)
			}
			s.mu.Unlock()
		}
	}

	if err := s.router.JoinRoom(threadID); err != nil {
		return fmt.Errorf("failed to join room %s: %w", threadID, err)
	}

	return nil
}

// Close leaves the room and drops the thread's in-memory state so stale
// events can no longer mutate it.
func (s *Store) Close(threadID string) {
	s.mu.Lock()
	st, ok := s.threads[threadID]
	delete(s.threads, threadID)
	s.mu.Unlock()

	if !ok {
		return
	}

	st.emitter.Cancel()
	_ = s.router.LeaveRoom(threadID)
}

func (s *Store) Messages(threadID string) model.MessageList {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.threads[threadID]
	if !ok {
		return nil
	}

	out := make(model.MessageList, len(st.messages))
	copy(out, st.messages)
	return out
}

func (s *Store) Snapshot(threadID string) (*model.ThreadSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.threads[threadID]
	if !ok {
		return nil, false
	}

	thread := st.thread
	thread.TypingUsers = s.typingUsersLocked(st)

	messages := make(model.MessageList, len(st.messages))
	copy(messages, st.messages)

	return &model.ThreadSnapshot{
		Thread:   thread,
		Messages: messages,
		HasMore:  st.hasMore,
	}, true
}

// Send validates and emits; it never renders locally. The message appears
// in the store only when the server echoes it back, so an unacknowledged
// send is visible as its absence.
func (s *Store) Send(threadID, content string, attachments []model.Attachment, replyToID string) error {
	if validator.IsEmptyMessage(content, attachments) {
		return nil
	}

	v := validator.New()
	if err := v.ValidateMessage(content, attachments); err != nil {
		return err
	}

	atts := make([]any, 0, len(attachments))
	for _, a := range attachments {
		atts = append(atts, a)
	}

	out := socket.OutgoingMessage{
		RoomID:      threadID,
		Content:     content,
		Attachments: atts,
		ReplyToID:   replyToID,
		ClientRef:   uuid.NewString(),
	}

	if err := s.router.Emit(socket.OpGroupMessage, out); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

// MarkSeen fires a one-way seen event for the latest message, but only when
// that message came from someone else. No acknowledgement is awaited.
func (s *Store) MarkSeen(threadID string) {
	s.mu.Lock()
	st, ok := s.threads[threadID]
	if !ok || len(st.messages) == 0 {
		s.mu.Unlock()
		return
	}

	latest := st.messages[len(st.messages)-1]
	if latest.SenderID == s.selfID {
		s.mu.Unlock()
		return
	}

	st.thread.UnreadCount = 0
	s.mu.Unlock()

	_ = s.router.Emit(socket.OpGroupSeen, socket.SeenData{
		RoomID:    threadID,
		MessageID: latest.ID.String(),
	})
}

// SetTyping reports local input activity; the emitter turns bursts of calls
// into a debounced typing:true and a single trailing typing:false.
func (s *Store) SetTyping(threadID string) {
	s.mu.Lock()
	st, ok := s.threads[threadID]
	s.mu.Unlock()

	if !ok {
		return
	}

	st.emitter.Activity()
}

func (s *Store) TypingUsers(threadID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.threads[threadID]
	if !ok {
		return nil
	}

	return s.typingUsersLocked(st)
}

// typingUsersLocked filters out indicators past their liveness deadline, so
// a peer whose stop event was lost cannot stay "typing" forever.
func (s *Store) typingUsersLocked(st *threadState) []string {
	now := s.clock.Now()

	users := make([]string, 0, len(st.typing))
	for userID, expiresAt := range st.typing {
		if now.Before(expiresAt) {
			users = append(users, userID)
		} else {
			delete(st.typing, userID)
		}
	}

	sort.Strings(users)
	return users
}

// LoadOlder fetches one history page and merges it at the head. The loading
// flag admits a single fetch at a time; concurrent triggers are no-ops.
func (s *Store) LoadOlder(ctx context.Context, threadID string) (int, error) {
	s.mu.Lock()
	st, ok := s.threads[threadID]
	if !ok {
		s.mu.Unlock()
		return 0, fmt.Errorf("thread %s is not open", threadID)
	}
	if st.loading || !st.hasMore {
		s.mu.Unlock()
		return 0, nil
	}
	st.loading = true
	cursor := st.cursor
	s.mu.Unlock()

	page, err := s.history.GetThreadMessages(ctx, threadID, cursor, historyPageSize)

	s.mu.Lock()
	defer s.mu.Unlock()

	// The thread may have been closed while the fetch was in flight.
	st, ok = s.threads[threadID]
	if !ok {
		return 0, nil
	}
	st.loading = false

	if err != nil {
		return 0, err
	}

	st.cursor = page.NextCursor
	st.hasMore = page.HasMore
	if len(page.Items) == 0 {
		st.hasMore = false
		return 0, nil
	}

	return s.mergeLocked(st, page.Items, true), nil
}

// mergeLocked inserts messages with id-based de-duplication, keeping the
// server-assigned order. History pages go to the head, live pushes to the
// tail; settled messages are never reordered.
func (s *Store) mergeLocked(st *threadState, incoming model.MessageList, atHead bool) int {
	fresh := make(model.MessageList, 0, len(incoming))
	for _, msg := range incoming {
		if _, dup := st.known[msg.ID]; dup {
			continue
		}
		msg.Content = s.sanitizer.HTML(msg.Content)
		st.known[msg.ID] = struct{}{}
		fresh = append(fresh, msg)
	}

	if len(fresh) == 0 {
		return 0
	}

	if atHead {
		sort.SliceStable(fresh, func(i, j int) bool {
			return fresh[i].CreatedAt.Before(fresh[j].CreatedAt)
		})
		st.messages = append(fresh, st.messages...)
	} else {
		st.messages = append(st.messages, fresh...)
	}

	return len(fresh)
}

func (s *Store) onMessage(event socket.Event) {
	var msg model.Message
	if err := json.Unmarshal(event.Data, &msg); err != nil {
		return
	}

	threadID := msg.ThreadID.String()

	s.mu.Lock()
	st, ok := s.threads[threadID]
	if !ok {
		s.mu.Unlock()
		return
	}

	added := s.mergeLocked(st, model.MessageList{msg}, false)
	if added > 0 && msg.SenderID != s.selfID {
		st.thread.UnreadCount++
	}

	// A message from a peer supersedes their typing indicator.
	delete(st.typing, msg.SenderID.String())

	var toCache model.MessageList
	if added > 0 && s.cache != nil {
		toCache = model.MessageList{st.messages[len(st.messages)-1]}
	}
	s.mu.Unlock()

	if toCache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = s.cache.SaveMessages(ctx, threadID, toCache)
	}
}

func (s *Store) onTyping(event socket.Event) {
	var data socket.TypingData
	if err := json.Unmarshal(event.Data, &data); err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.threads[data.RoomID]
	if !ok {
		return
	}

	if data.Typing {
		st.typing[data.UserID] = s.clock.Now().Add(s.peerExpiry)
	} else {
		delete(st.typing, data.UserID)
	}
}

func (s *Store) onMemberState(event socket.Event) {
	var data socket.MemberStateData
	if err := json.Unmarshal(event.Data, &data); err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.threads[data.RoomID]
	if !ok {
		return
	}

	st.thread.ActiveMembers = data.ActiveMembers
}

func (s *Store) onConnected(socket.Event) {
	s.setConnected(true)
}

func (s *Store) onDisconnected(socket.Event) {
	s.setConnected(false)
}

func (s *Store) setConnected(connected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, st := range s.threads {
		st.thread.Connected = connected
	}
}
