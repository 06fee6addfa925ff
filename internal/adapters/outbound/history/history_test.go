package history_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagekraft/pagekraft/internal/adapters/outbound/history"
	"github.com/pagekraft/pagekraft/internal/domain"
)

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entries, err := h.Load(dir)
	require.NoError(t, err)
	assert.Nil(t, entries, "missing history file reads as empty")

	first := domain.AuditEntry{Timestamp: "2026-08-25T10:00:00Z", Overall: 7.2, Grade: "B"}
	require.NoError(t, h.Save(dir, first))

	second := domain.AuditEntry{Timestamp: "2026-08-25T11:00:00Z", CommitHash: "abc1234", Overall: 8.4, Grade: "A"}
	require.NoError(t, h.Save(dir, second))

	entries, err = h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0])
	assert.Equal(t, second, entries[1])
}
