package chat

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/solemate/solemate-backend/internal/data/repos/testutil"
	"github.com/solemate/solemate-backend/internal/domain"
	"github.com/solemate/solemate-backend/internal/pkg/dbctx"
)

func seedConversation(t *testing.T, repo ChatMessageRepo, sessionID string, turns int) {
	t.Helper()
	dbc := dbctx.Context{Ctx: context.Background()}
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < turns; i++ {
		role := domain.RoleUser
		if i%2 == 1 {
			role = domain.RoleAssistant
		}
		rows := []*domain.ChatMessage{{
			SessionID: sessionID,
			Role:      role,
			Message:   fmt.Sprintf("mensaje %d", i),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}}
		if _, err := repo.Create(dbc, rows); err != nil {
			t.Fatalf("seed turn %d: %v", i, err)
		}
	}
}

func TestCreateAssignsIDs(t *testing.T) {
	repo := NewChatMessageRepo(testutil.DB(t), testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background()}

	m, err := domain.NewChatMessage("s1", domain.RoleUser, "Hola")
	if err != nil {
		t.Fatalf("NewChatMessage: %v", err)
	}
	saved, err := repo.Create(dbc, []*domain.ChatMessage{m})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(saved) != 1 || saved[0].ID == 0 {
		t.Fatalf("expected id assigned on create, got %+v", saved)
	}
}

func TestListRecentWindowAndOrder(t *testing.T) {
	repo := NewChatMessageRepo(testutil.DB(t), testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background()}
	seedConversation(t, repo, "s1", 10)

	got, err := repo.ListRecent(dbc, "s1", 6)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("len=%d, want 6", len(got))
	}
	if got[0].Message != "mensaje 4" || got[5].Message != "mensaje 9" {
		t.Fatalf("chronological order broken: first=%q last=%q", got[0].Message, got[5].Message)
	}

	// Idempotent when nothing is written in between.
	again, err := repo.ListRecent(dbc, "s1", 6)
	if err != nil {
		t.Fatalf("ListRecent again: %v", err)
	}
	for i := range got {
		if got[i].ID != again[i].ID {
			t.Fatalf("second read disagreed at %d: %d vs %d", i, got[i].ID, again[i].ID)
		}
	}
}

func TestListRecentSmallerHistory(t *testing.T) {
	repo := NewChatMessageRepo(testutil.DB(t), testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background()}
	seedConversation(t, repo, "s1", 3)

	got, err := repo.ListRecent(dbc, "s1", 6)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len=%d, want all 3", len(got))
	}
}

func TestListRecentNonPositiveCount(t *testing.T) {
	repo := NewChatMessageRepo(testutil.DB(t), testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background()}
	seedConversation(t, repo, "s1", 2)

	for _, count := range []int{0, -5} {
		got, err := repo.ListRecent(dbc, "s1", count)
		if err != nil {
			t.Fatalf("ListRecent(%d): %v", count, err)
		}
		if len(got) != 0 {
			t.Fatalf("count=%d should return empty, got %d rows", count, len(got))
		}
	}
}

func TestListRecentTiesBrokenByInsertionOrder(t *testing.T) {
	db := testutil.DB(t)
	repo := NewChatMessageRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background()}

	// Two messages in the same clock tick must keep insertion order.
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	testutil.SeedChatMessage(t, dbc.Ctx, db, "s1", domain.RoleUser, "primero", ts)
	testutil.SeedChatMessage(t, dbc.Ctx, db, "s1", domain.RoleAssistant, "segundo", ts)

	got, err := repo.ListRecent(dbc, "s1", 10)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(got) != 2 || got[0].Message != "primero" || got[1].Message != "segundo" {
		t.Fatalf("same-tick ordering broken: %+v", got)
	}
}

func TestListBySessionLimitAndIsolation(t *testing.T) {
	repo := NewChatMessageRepo(testutil.DB(t), testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background()}
	seedConversation(t, repo, "s1", 6)
	seedConversation(t, repo, "s2", 4)

	all, err := repo.ListBySession(dbc, "s1", 0)
	if err != nil {
		t.Fatalf("ListBySession: %v", err)
	}
	if len(all) != 6 {
		t.Fatalf("uncapped history len=%d, want 6", len(all))
	}

	capped, err := repo.ListBySession(dbc, "s1", 2)
	if err != nil {
		t.Fatalf("ListBySession capped: %v", err)
	}
	if len(capped) != 2 || capped[1].Message != "mensaje 5" {
		t.Fatalf("cap should keep the most recent rows, got %+v", capped)
	}

	other, err := repo.ListBySession(dbc, "s2", 0)
	if err != nil {
		t.Fatalf("ListBySession s2: %v", err)
	}
	if len(other) != 4 {
		t.Fatalf("sessions leaked: s2 len=%d, want 4", len(other))
	}
}

func TestDeleteBySession(t *testing.T) {
	repo := NewChatMessageRepo(testutil.DB(t), testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background()}
	seedConversation(t, repo, "s1", 2)

	deleted, err := repo.DeleteBySession(dbc, "s1")
	if err != nil {
		t.Fatalf("DeleteBySession: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("deleted=%d, want 2", deleted)
	}

	left, err := repo.ListBySession(dbc, "s1", 0)
	if err != nil {
		t.Fatalf("ListBySession: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("history should be empty after purge, got %d", len(left))
	}

	// Purging an unknown session is not an error.
	deleted, err = repo.DeleteBySession(dbc, "ghost")
	if err != nil {
		t.Fatalf("DeleteBySession ghost: %v", err)
	}
	if deleted != 0 {
		t.Fatalf("deleted=%d for unknown session, want 0", deleted)
	}
}
