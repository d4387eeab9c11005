package storage

import "sync"

// Role is the part a chat plays in the quiz.
type Role string

const (
	RoleNone   Role = ""
	RoleAuthor Role = "author"
	RoleTaker  Role = "taker"
)

// ChatState is the per-chat presentation state of the bot.
type ChatState struct {
	Role             Role
	AwaitingQuestion bool // next plain message is a question draft
}

// ChatStorage keeps ChatState by chat ID.
type ChatStorage struct {
	mu    sync.RWMutex
	chats map[int64]ChatState
}

func NewChatStorage() *ChatStorage {
	return &ChatStorage{
		chats: make(map[int64]ChatState),
	}
}

func (s *ChatStorage) Get(chatID int64) ChatState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.chats[chatID]
}

// Modify applies fn to the state of chatID and stores the result.
func (s *ChatStorage) Modify(chatID int64, fn func(*ChatState)) ChatState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.chats[chatID]
	fn(&state)
	s.chats[chatID] = state

	return state
}
