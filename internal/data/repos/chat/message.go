package chat

import (
	"gorm.io/gorm"

	"github.com/solemate/solemate-backend/internal/domain"
	"github.com/solemate/solemate-backend/internal/pkg/dbctx"
	"github.com/solemate/solemate-backend/internal/pkg/logger"
)

type ChatMessageRepo interface {
	// Create appends messages; the store assigns ids. Validation happens
	// earlier, at message construction.
	Create(dbc dbctx.Context, rows []*domain.ChatMessage) ([]*domain.ChatMessage, error)
	// ListRecent returns the count most recent messages for the session in
	// chronological order (oldest of the retained subset first). count <= 0
	// returns an empty slice.
	ListRecent(dbc dbctx.Context, sessionID string, count int) ([]*domain.ChatMessage, error)
	// ListBySession returns the session's history in chronological order,
	// capped to the most recent limit when limit > 0.
	ListBySession(dbc dbctx.Context, sessionID string, limit int) ([]*domain.ChatMessage, error)
	// DeleteBySession purges the session and returns the number of rows
	// removed. An unknown session deletes 0 rows and is not an error.
	DeleteBySession(dbc dbctx.Context, sessionID string) (int64, error)
}

type chatMessageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChatMessageRepo(db *gorm.DB, log *logger.Logger) ChatMessageRepo {
	return &chatMessageRepo{db: db, log: log.With("repo", "ChatMessageRepo")}
}

func (r *chatMessageRepo) conn(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *chatMessageRepo) Create(dbc dbctx.Context, rows []*domain.ChatMessage) ([]*domain.ChatMessage, error) {
	if len(rows) == 0 {
		return []*domain.ChatMessage{}, nil
	}
	if err := r.conn(dbc).WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Newest-first query, then reversed in memory. The id tiebreaker keeps
// same-tick messages in insertion order across reloads.
func (r *chatMessageRepo) listNewestFirst(dbc dbctx.Context, sessionID string, limit int) ([]*domain.ChatMessage, error) {
	q := r.conn(dbc).WithContext(dbc.Ctx).
		Model(&domain.ChatMessage{}).
		Where("session_id = ?", sessionID).
		Order("timestamp DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []*domain.ChatMessage
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (r *chatMessageRepo) ListRecent(dbc dbctx.Context, sessionID string, count int) ([]*domain.ChatMessage, error) {
	if count <= 0 {
		return []*domain.ChatMessage{}, nil
	}
	return r.listNewestFirst(dbc, sessionID, count)
}

func (r *chatMessageRepo) ListBySession(dbc dbctx.Context, sessionID string, limit int) ([]*domain.ChatMessage, error) {
	return r.listNewestFirst(dbc, sessionID, limit)
}

func (r *chatMessageRepo) DeleteBySession(dbc dbctx.Context, sessionID string) (int64, error) {
	res := r.conn(dbc).WithContext(dbc.Ctx).
		Where("session_id = ?", sessionID).
		Delete(&domain.ChatMessage{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
