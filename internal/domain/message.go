package domain

import "strings"

// SenderKind clasifica al autor de un mensaje entrante.
type SenderKind string

const (
	SenderUser  SenderKind = "user"
	SenderBot   SenderKind = "bot"
	SenderOther SenderKind = "other"
)

// ParseSenderKind traduce el sender_type de GroupMe. Cualquier valor desconocido es SenderOther.
func ParseSenderKind(raw string) SenderKind {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(SenderUser):
		return SenderUser
	case string(SenderBot):
		return SenderBot
	default:
		return SenderOther
	}
}

// InboundMessage es un post del grupo recibido por el webhook. No se persiste.
type InboundMessage struct {
	ID          string     `json:"id,omitempty"`
	GroupID     string     `json:"group_id,omitempty"`
	SenderKind  SenderKind `json:"sender_kind"`
	DisplayName string     `json:"display_name"`
	Text        string     `json:"text"`
}

func (m InboundMessage) FromBot() bool {
	return m.SenderKind == SenderBot
}
