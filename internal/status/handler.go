package status

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/lumeapp/sync-client/internal/config"
)

type Handler struct {
	threads       ThreadSource
	notifications NotificationSource
	socket        SocketState
	preferences   PreferenceStore
}

func New(threads ThreadSource, notifications NotificationSource, socket SocketState, preferences PreferenceStore) *Handler {
	return &Handler{
		threads:       threads,
		notifications: notifications,
		socket:        socket,
		preferences:   preferences,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]any{
		"status":    "ok",
		"connected": h.socket.Connected(),
	}, http.StatusOK)
}

func (h *Handler) GetThreadState(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetThreadState")

	threadID := chi.URLParam(r, "id")
	if threadID == "" {
		logger.Error("failed to get thread id from path")
		h.writeError(w, "thread id is required", http.StatusBadRequest)
		return
	}

	snapshot, ok := h.threads.Snapshot(threadID)
	if !ok {
		logger.Error(fmt.Sprintf("thread %s is not open", threadID))
		h.writeError(w, "thread is not open", http.StatusNotFound)
		return
	}

	h.writeJSON(w, map[string]any{
		"thread":       snapshot.Thread,
		"messages":     snapshot.Messages,
		"has_more":     snapshot.HasMore,
		"typing_users": h.threads.TypingUsers(threadID),
	}, http.StatusOK)
}

func (h *Handler) GetNotificationState(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]any{
		"items":    h.notifications.Items(),
		"unread":   h.notifications.Unread(),
		"has_more": h.notifications.HasMore(),
	}, http.StatusOK)
}

// GetPreference returns a persisted client preference such as the theme or
// a signup draft. A never-set preference reads back as an empty value.
func (h *Handler) GetPreference(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetPreference")

	name := chi.URLParam(r, "name")
	if name == "" {
		logger.Error("failed to get preference name from path")
		h.writeError(w, "preference name is required", http.StatusBadRequest)
		return
	}

	value, err := h.preferences.Preference(r.Context(), name)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to read preference: %v", err))
		h.writeError(w, "failed to read preference", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, map[string]string{
		"name":  name,
		"value": value,
	}, http.StatusOK)
}

func (h *Handler) SetPreference(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SetPreference")

	name := chi.URLParam(r, "name")
	if name == "" {
		logger.Error("failed to get preference name from path")
		h.writeError(w, "preference name is required", http.StatusBadRequest)
		return
	}

	var body struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request body: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.preferences.SetPreference(r.Context(), name, body.Value); err != nil {
		logger.Error(fmt.Sprintf("failed to save preference: %v", err))
		h.writeError(w, "failed to save preference", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, map[string]string{
		"name":  name,
		"value": body.Value,
	}, http.StatusOK)
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func (h *Handler) writeJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
