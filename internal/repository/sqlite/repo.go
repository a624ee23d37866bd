// Package sqlite is the local persisted client state: credentials, user
// preferences (theme, the model-signup draft) and a bounded offline cache
// of messages and notifications served before the first sync completes.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/lumeapp/sync-client/internal/config"
	"github.com/lumeapp/sync-client/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS credentials (
	name  TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS preferences (
	name  TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS messages (
	id          TEXT PRIMARY KEY,
	thread_id   TEXT NOT NULL,
	sender_id   TEXT NOT NULL,
	type        TEXT NOT NULL,
	content     TEXT NOT NULL,
	reply_to_id TEXT,
	created_at  TIMESTAMP NOT NULL,
	seen        BOOLEAN NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_messages_thread ON messages (thread_id, created_at);

CREATE TABLE IF NOT EXISTS notifications (
	id         TEXT PRIMARY KEY,
	type       TEXT NOT NULL,
	message    TEXT NOT NULL,
	url        TEXT NOT NULL,
	read       BOOLEAN NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL
);
`

const (
	accessTokenKey  = "access_token"
	refreshTokenKey = "refresh_token"
)

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conn, err := sqlx.Connect("sqlite", cfg.Cache.Path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		log.Fatal("error migrate: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

func (r *Repository) Tokens(ctx context.Context) (string, string, error) {
	access, err := r.credential(ctx, accessTokenKey)
	if err != nil {
		return "", "", err
	}

	refresh, err := r.credential(ctx, refreshTokenKey)
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

func (r *Repository) credential(ctx context.Context, name string) (string, error) {
	query, args, err := sq.Select("value").
		From("credentials").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build sql query: %v", err)
	}

	var value string
	err = r.connection.GetContext(ctx, &value, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credential: %v", err)
	}

	return value, nil
}

func (r *Repository) SaveTokens(ctx context.Context, access, refresh string) error {
	pairs := map[string]string{
		accessTokenKey:  access,
		refreshTokenKey: refresh,
	}

	for name, value := range pairs {
		query, args, err := sq.Insert("credentials").
			Columns("name", "value").
			Values(name, value).
			Suffix("ON CONFLICT (name) DO UPDATE SET value = excluded.value").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build sql query: %v", err)
		}

		if _, err := r.connection.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to save credential: %v", err)
		}
	}

	return nil
}

func (r *Repository) Preference(ctx context.Context, name string) (string, error) {
	query, args, err := sq.Select("value").
		From("preferences").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build sql query: %v", err)
	}

	var value string
	err = r.connection.GetContext(ctx, &value, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read preference: %v", err)
	}

	return value, nil
}

func (r *Repository) SetPreference(ctx context.Context, name, value string) error {
	query, args, err := sq.Insert("preferences").
		Columns("name", "value").
		Values(name, value).
		Suffix("ON CONFLICT (name) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err := r.connection.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save preference: %v", err)
	}

	return nil
}

func (r *Repository) SaveMessages(ctx context.Context, threadID string, messages model.MessageList) error {
	if len(messages) == 0 {
		return nil
	}

	builder := sq.Insert("messages").
		Columns("id", "thread_id", "sender_id", "type", "content", "reply_to_id", "created_at", "seen").
		Suffix("ON CONFLICT (id) DO UPDATE SET seen = excluded.seen")

	for _, msg := range messages {
		builder = builder.Values(msg.ID, threadID, msg.SenderID, msg.Type, msg.Content, msg.ReplyToID, msg.CreatedAt, msg.Seen)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err := r.connection.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save messages: %v", err)
	}

	return nil
}

// LoadMessages returns the newest cached messages for a thread in
// chronological order.
func (r *Repository) LoadMessages(ctx context.Context, threadID string, limit int) (model.MessageList, error) {
	queryBuilder := sq.Select(
		"id",
		"thread_id",
		"sender_id",
		"type",
		"content",
		"reply_to_id",
		"created_at",
		"seen",
	).
		From("messages").
		Where(sq.Eq{"thread_id": threadID}).
		OrderBy("created_at DESC")

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	} else {
		queryBuilder = queryBuilder.Limit(50)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	if err := r.connection.SelectContext(ctx, &messages, query, args...); err != nil {
		return nil, fmt.Errorf("failed to load messages: %v", err)
	}

	// Reverse into chronological order; the query reads newest-first.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

func (r *Repository) SaveNotifications(ctx context.Context, notifications model.NotificationList) error {
	if len(notifications) == 0 {
		return nil
	}

	builder := sq.Insert("notifications").
		Columns("id", "type", "message", "url", "read", "created_at").
		Suffix("ON CONFLICT (id) DO UPDATE SET read = excluded.read")

	for _, n := range notifications {
		builder = builder.Values(n.ID, n.Type, n.Message, n.URL, n.Read, n.CreatedAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err := r.connection.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save notifications: %v", err)
	}

	return nil
}

func (r *Repository) LoadNotifications(ctx context.Context, limit int) (model.NotificationList, error) {
	queryBuilder := sq.Select("id", "type", "message", "url", "read", "created_at").
		From("notifications").
		OrderBy("created_at DESC")

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var notifications model.NotificationList
	if err := r.connection.SelectContext(ctx, &notifications, query, args...); err != nil {
		return nil, fmt.Errorf("failed to load notifications: %v", err)
	}

	return notifications, nil
}
