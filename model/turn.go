package model

import "time"

// Role identifies who produced a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message of a conversation.
// Assistant turns carry the ranked results per collection and, when nothing
// matched, the did-you-mean suggestions offered to the user.
type Turn struct {
	ID          string         `json:"id"`
	Role        Role           `json:"role"`
	Content     string         `json:"content"`
	CodeResults []ScoredResult `json:"res_kode,omitempty"`
	TypeResults []ScoredResult `json:"res_jenis,omitempty"`
	Suggestions []Suggestion   `json:"suggestions,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
}

// HasResults reports whether the turn carries at least one result.
func (t Turn) HasResults() bool {
	return len(t.CodeResults) > 0 || len(t.TypeResults) > 0
}
