package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/kanban-board/internal/domain"
)

var (
	alice = &domain.User{ID: 1, Email: "alice@example.com", Fullname: "Alice"}
	bob   = &domain.User{ID: 2, Email: "bob@example.com", Fullname: "Bob"}
	carol = &domain.User{ID: 3, Email: "carol@example.com", Fullname: "Carol"}
)

// sprintBoard is owned by Alice with Alice and Bob as members.
func sprintBoard() *domain.Board {
	return &domain.Board{
		ID:      10,
		Title:   "Sprint 1",
		OwnerID: alice.ID,
		Owner:   alice,
		Members: []domain.User{*alice, *bob},
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}

func stringPtr(v string) *string {
	return &v
}

func statusPtr(s domain.Status) *domain.Status {
	return &s
}

func priorityPtr(p domain.Priority) *domain.Priority {
	return &p
}

func requireFieldError(t *testing.T, err error, fields ...string) {
	t.Helper()

	var de *domain.DomainError
	require.True(t, errors.As(err, &de), "expected DomainError, got %v", err)
	assert.Equal(t, domain.CodeValidationFailed, de.Code)
	for _, f := range fields {
		assert.Contains(t, de.Fields, f)
	}
}
