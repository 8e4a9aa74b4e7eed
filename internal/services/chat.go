package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/solemate/solemate-backend/internal/data/repos"
	"github.com/solemate/solemate-backend/internal/domain"
	"github.com/solemate/solemate-backend/internal/pkg/dbctx"
	"github.com/solemate/solemate-backend/internal/pkg/logger"
)

// ChatResult is the outcome of one processed user turn.
type ChatResult struct {
	SessionID        string    `json:"session_id"`
	UserMessage      string    `json:"user_message"`
	AssistantMessage string    `json:"assistant_message"`
	Timestamp        time.Time `json:"timestamp"`
}

type ChatService interface {
	// ProcessMessage runs one chat turn: fetch catalog, fetch the recent
	// window, assemble context, generate a reply, then persist both new
	// messages atomically. Failures other than input validation are
	// wrapped once in domain.ChatError.
	ProcessMessage(dbc dbctx.Context, sessionID, message string) (*ChatResult, error)
	// GetSessionHistory returns the session's messages in chronological
	// order, capped to the most recent limit when limit > 0.
	GetSessionHistory(dbc dbctx.Context, sessionID string, limit int) ([]*domain.ChatMessage, error)
	// ClearSessionHistory purges the session and returns the count removed.
	ClearSessionHistory(dbc dbctx.Context, sessionID string) (int64, error)
}

type chatService struct {
	db            *gorm.DB
	log           *logger.Logger
	products      repos.ProductRepo
	messages      repos.ChatMessageRepo
	generator     ResponseGenerator
	contextWindow int
}

func NewChatService(
	db *gorm.DB,
	baseLog *logger.Logger,
	productRepo repos.ProductRepo,
	messageRepo repos.ChatMessageRepo,
	generator ResponseGenerator,
	contextWindow int,
) ChatService {
	if contextWindow <= 0 {
		contextWindow = domain.DefaultContextWindow
	}
	return &chatService{
		db:            db,
		log:           baseLog.With("service", "ChatService"),
		products:      productRepo,
		messages:      messageRepo,
		generator:     generator,
		contextWindow: contextWindow,
	}
}

func (s *chatService) ProcessMessage(dbc dbctx.Context, sessionID, message string) (*ChatResult, error) {
	// Construct (and thereby validate) the user turn first so bad input
	// surfaces as a validation error, not a wrapped chat failure.
	userMsg, err := domain.NewChatMessage(sessionID, domain.RoleUser, message)
	if err != nil {
		return nil, err
	}

	products, err := s.products.GetAll(dbc)
	if err != nil {
		return nil, &domain.ChatError{Err: err}
	}

	recent, err := s.messages.ListRecent(dbc, sessionID, s.contextWindow)
	if err != nil {
		return nil, &domain.ChatError{Err: err}
	}
	chatContext := domain.NewChatContext(recent, s.contextWindow)

	// The single suspension point: the remote model. The generator
	// substitutes the fallback reply on its own failures, so an error
	// here is already an unexpected condition.
	reply, err := s.generator.GenerateResponse(dbc.Ctx, message, products, chatContext)
	if err != nil {
		return nil, &domain.ChatError{Err: err}
	}

	assistantMsg, err := domain.NewChatMessage(sessionID, domain.RoleAssistant, reply)
	if err != nil {
		return nil, &domain.ChatError{Err: err}
	}

	// Both turns commit together: the history never ends up with an
	// unpaired entry.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		txc := dbctx.Context{Ctx: dbc.Ctx, Tx: tx}
		if _, err := s.messages.Create(txc, []*domain.ChatMessage{userMsg}); err != nil {
			return err
		}
		if _, err := s.messages.Create(txc, []*domain.ChatMessage{assistantMsg}); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, &domain.ChatError{Err: err}
	}

	s.log.Info("Chat turn processed",
		"session_id", sessionID,
		"context_messages", len(chatContext.Recent()),
		"catalog_size", len(products),
	)

	return &ChatResult{
		SessionID:        sessionID,
		UserMessage:      userMsg.Message,
		AssistantMessage: assistantMsg.Message,
		Timestamp:        assistantMsg.Timestamp,
	}, nil
}

func (s *chatService) GetSessionHistory(dbc dbctx.Context, sessionID string, limit int) ([]*domain.ChatMessage, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}
	return s.messages.ListBySession(dbc, sessionID, limit)
}

func (s *chatService) ClearSessionHistory(dbc dbctx.Context, sessionID string) (int64, error) {
	if err := validateSessionID(sessionID); err != nil {
		return 0, err
	}
	deleted, err := s.messages.DeleteBySession(dbc, sessionID)
	if err != nil {
		return 0, err
	}
	s.log.Info("Session history cleared", "session_id", sessionID, "deleted", deleted)
	return deleted, nil
}

func validateSessionID(sessionID string) error {
	if sessionID == "" {
		return &domain.ValidationError{Reason: "session_id cannot be empty"}
	}
	return nil
}
