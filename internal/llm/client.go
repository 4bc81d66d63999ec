package llm

import (
	"context"
	"errors"
)

// Roles de una conversación enviada al proveedor.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

var ErrEmptyCompletion = errors.New("llm empty response")

// Message es un turno de la conversación.
type Message struct {
	Role    string
	Content string
}

// ChatClient define la interfaz para pedir una completion a un LLM.
type ChatClient interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
