// pkg/mem/conversation_window.go
package mem

import "sync"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DefaultWindowCapacity is part of the store's contract: a sliding FIFO of
// the last 10 turns per user, oldest evicted on overflow.
const DefaultWindowCapacity = 10

type Turn struct {
	Role string // RoleUser | RoleAssistant
	Text string
}

type ConversationStore interface {
	Append(userID string, turn Turn)

	// RecentWindow returns up to n most recent turns in chronological order.
	RecentWindow(userID string, n int) []Turn

	// LastAssistantTurn returns the text of the most recent assistant turn,
	// or false when the window holds none.
	LastAssistantTurn(userID string) (string, bool)

	// Clear resets the user's window to empty without forgetting the user.
	Clear(userID string)
}

type ConversationWindows struct {
	mu       sync.RWMutex
	capacity int
	data     map[string][]Turn
}

func NewConversationWindows(capacity int) *ConversationWindows {
	if capacity <= 0 {
		capacity = DefaultWindowCapacity
	}
	return &ConversationWindows{
		capacity: capacity,
		data:     make(map[string][]Turn),
	}
}

func (s *ConversationWindows) Append(userID string, turn Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	window := append(s.data[userID], turn)
	if len(window) > s.capacity {
		window = window[len(window)-s.capacity:]
	}
	s.data[userID] = window
}

func (s *ConversationWindows) RecentWindow(userID string, n int) []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	window := s.data[userID]
	if n > len(window) {
		n = len(window)
	}
	if n <= 0 {
		return nil
	}

	out := make([]Turn, n)
	copy(out, window[len(window)-n:])
	return out
}

func (s *ConversationWindows) LastAssistantTurn(userID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	window := s.data[userID]
	for i := len(window) - 1; i >= 0; i-- {
		if window[i].Role == RoleAssistant {
			return window[i].Text, true
		}
	}
	return "", false
}

func (s *ConversationWindows) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[userID]; ok {
		s.data[userID] = nil
	}
}
