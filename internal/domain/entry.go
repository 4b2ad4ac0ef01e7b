package domain

import "time"

// LogEntry is one solved-problem record owned by a single user.
type LogEntry struct {
	EntryID    string    `json:"id" dynamodbav:"entry_id"`
	UserID     string    `json:"userId" dynamodbav:"user_id"`
	Question   string    `json:"question" dynamodbav:"question"`
	Link       string    `json:"link" dynamodbav:"link"`
	Topic      string    `json:"topic" dynamodbav:"topic"`
	Complexity string    `json:"complexity" dynamodbav:"complexity"`
	Note       string    `json:"note" dynamodbav:"note"`
	Status     string    `json:"status" dynamodbav:"status"`
	CreatedAt  time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt  time.Time `json:"updated" dynamodbav:"updated_at"`
}

type SaveEntryRequest struct {
	Question   string `json:"question" validate:"required"`
	Link       string `json:"link"`
	Topic      string `json:"topic"`
	Complexity string `json:"complexity"`
	Note       string `json:"note"`
	Status     string `json:"status"`
}

// UpdateEntryRequest carries the wire field names the web client sends.
// "category" and "notes" map onto the stored topic and note attributes.
type UpdateEntryRequest struct {
	Question   *string `json:"question"`
	Category   *string `json:"category"`
	Notes      *string `json:"notes"`
	Complexity *string `json:"complexity"`
	Status     *string `json:"status"`
}
