package domain

import "time"

// ConversationLogEntry registra un intercambio mensaje/respuesta. Solo se agrega, nunca se edita.
type ConversationLogEntry struct {
	ID        string    `json:"id" db:"id"`
	User      string    `json:"user" db:"user_name"`
	Message   string    `json:"message" db:"message"`
	Reply     string    `json:"reply" db:"reply"`
	Timestamp time.Time `json:"timestamp" db:"logged_at"`
}
