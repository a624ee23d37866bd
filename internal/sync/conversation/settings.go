// Package conversation loads the settings pane state for a one-to-one
// thread: the receiver profile, whether that user is blocked, and the
// mutual free-message opt-in.
package conversation

import (
	"context"
	"fmt"
	"sync"

	"github.com/lumeapp/sync-client/internal/model"
)

type Settings struct {
	api    API
	selfID int64

	mu      sync.Mutex
	current *model.ConversationSettings
}

func NewSettings(api API, selfID int64) *Settings {
	return &Settings{api: api, selfID: selfID}
}

// Load fetches the receiver and, when the receiver is someone else, their
// block status. Viewing a thread with oneself skips the block check.
func (s *Settings) Load(ctx context.Context, conversationID string) (*model.ConversationSettings, error) {
	receiver, err := s.api.GetReceiver(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	settings := &model.ConversationSettings{Receiver: *receiver}

	if receiver.ID != s.selfID {
		status, err := s.api.CheckBlockStatus(ctx, receiver.ID)
		if err != nil {
			return nil, err
		}
		settings.Blocked = status.IsBlocked
	}

	freeStatus, err := s.api.GetFreeMessageStatus(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	settings.FreeMessage = *freeStatus

	s.mu.Lock()
	s.current = settings
	s.mu.Unlock()

	return settings, nil
}

// ToggleFreeMessages flips this user's side of the opt-in. BothEnabled is
// whatever the server reports back; the transition rule lives server-side.
func (s *Settings) ToggleFreeMessages(ctx context.Context, conversationID string) (*model.FreeMessageStatus, error) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("settings are not loaded")
	}
	enabled := !s.current.FreeMessage.UserEnabled
	s.mu.Unlock()

	status, err := s.api.ToggleFreeMessages(ctx, conversationID, enabled)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current.FreeMessage = *status
	s.mu.Unlock()

	return status, nil
}

func (s *Settings) Current() (*model.ConversationSettings, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, false
	}

	copied := *s.current
	return &copied, true
}
