package models

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single entry in a session transcript.
type Message struct {
	Role    Role
	Content string
}

// SongCandidate is a (title, artist) pair extracted from one line of
// generation output, not yet resolved to a video.
type SongCandidate struct {
	Title  string
	Artist string
}

// Resolution records the outcome of resolving one candidate against the
// video search service. Err is kept for logging; it never reaches the user.
type Resolution struct {
	Candidate SongCandidate
	VideoID   string // empty when no match was found
	Err       error
}

// Matched reports whether the candidate resolved to a playable video.
func (r Resolution) Matched() bool {
	return r.Err == nil && r.VideoID != ""
}

// Session holds the in-memory state of one interactive chat: an id and an
// append-only message transcript. It lives for the duration of a UI session
// and is never persisted.
type Session struct {
	ID       string
	Messages []Message
}

// NewSession creates a session seeded with a single assistant greeting.
func NewSession(id, greeting string) *Session {
	return &Session{
		ID:       id,
		Messages: []Message{{Role: RoleAssistant, Content: greeting}},
	}
}

// Append adds a message to the transcript, preserving insertion order.
func (s *Session) Append(role Role, content string) {
	s.Messages = append(s.Messages, Message{Role: role, Content: content})
}

// Turns returns the number of completed user turns in the session.
func (s *Session) Turns() int {
	count := 0
	for _, m := range s.Messages {
		if m.Role == RoleUser {
			count++
		}
	}
	return count
}
