package mem

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendEvictsOldestBeyondCapacity(t *testing.T) {
	store := NewConversationWindows(10)

	for i := 0; i < 11; i++ {
		store.Append("u1", Turn{Role: RoleUser, Text: fmt.Sprintf("msg-%d", i)})
	}

	window := store.RecentWindow("u1", 100)
	require.Len(t, window, 10)
	assert.Equal(t, "msg-1", window[0].Text)
	assert.Equal(t, "msg-10", window[9].Text)
}

func TestRecentWindowIsChronologicalCopy(t *testing.T) {
	store := NewConversationWindows(10)
	store.Append("u1", Turn{Role: RoleUser, Text: "первый"})
	store.Append("u1", Turn{Role: RoleAssistant, Text: "второй"})
	store.Append("u1", Turn{Role: RoleUser, Text: "третий"})

	window := store.RecentWindow("u1", 2)
	require.Len(t, window, 2)
	assert.Equal(t, "второй", window[0].Text)
	assert.Equal(t, "третий", window[1].Text)

	// Mutating the returned slice must not leak into the store.
	window[0].Text = "изменён"
	again := store.RecentWindow("u1", 2)
	assert.Equal(t, "второй", again[0].Text)
}

func TestLastAssistantTurn(t *testing.T) {
	store := NewConversationWindows(10)

	_, ok := store.LastAssistantTurn("u1")
	assert.False(t, ok)

	store.Append("u1", Turn{Role: RoleUser, Text: "вопрос"})
	store.Append("u1", Turn{Role: RoleAssistant, Text: "ответ"})
	store.Append("u1", Turn{Role: RoleUser, Text: "ещё вопрос"})

	last, ok := store.LastAssistantTurn("u1")
	require.True(t, ok)
	assert.Equal(t, "ответ", last)
}

func TestClearEmptiesWindow(t *testing.T) {
	store := NewConversationWindows(10)
	store.Append("u1", Turn{Role: RoleAssistant, Text: "ответ"})

	store.Clear("u1")

	assert.Empty(t, store.RecentWindow("u1", 10))
	_, ok := store.LastAssistantTurn("u1")
	assert.False(t, ok)
}

func TestWindowsAreIsolatedPerUser(t *testing.T) {
	store := NewConversationWindows(10)
	store.Append("u1", Turn{Role: RoleUser, Text: "от первого"})
	store.Append("u2", Turn{Role: RoleUser, Text: "от второго"})

	require.Len(t, store.RecentWindow("u1", 10), 1)
	assert.Equal(t, "от первого", store.RecentWindow("u1", 10)[0].Text)
	assert.Equal(t, "от второго", store.RecentWindow("u2", 10)[0].Text)
}
