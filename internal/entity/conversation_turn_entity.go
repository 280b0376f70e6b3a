package entity

import "time"

// ConversationTurn is one question/answer exchange. Turns are appended to
// conversation memory only after a successful generation; insertion order is
// significant.
type ConversationTurn struct {
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}
