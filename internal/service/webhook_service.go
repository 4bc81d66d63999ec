package service

import (
	"context"

	"go.uber.org/zap"

	"groupme-bot/internal/domain"
	"groupme-bot/internal/notifier"
)

// Motivos por los que un mensaje no produce respuesta.
const (
	IgnoredFromBot   = "bot_sender"
	IgnoredNoMention = "mention_missing"
	IgnoredDuplicate = "duplicate_delivery"
)

// Outcome resume qué pasó con un mensaje entrante.
type Outcome struct {
	Ignored bool
	Reason  string
	Rule    string
	Entry   domain.ConversationLogEntry
}

// WebhookService orquesta dispatch, registro y envío para un mensaje entrante.
type WebhookService struct {
	dispatcher *Dispatcher
	log        *ConversationLog
	notifier   notifier.Notifier
	dedupe     DeliveryDeduper
	logger     *zap.Logger
}

func NewWebhookService(
	dispatcher *Dispatcher,
	log *ConversationLog,
	notifier notifier.Notifier,
	dedupe DeliveryDeduper,
	logger *zap.Logger,
) *WebhookService {
	return &WebhookService{
		dispatcher: dispatcher,
		log:        log,
		notifier:   notifier,
		dedupe:     dedupe,
		logger:     logger,
	}
}

// Handle procesa un mensaje. Solo devuelve error si falla el registro; en ese caso no se envía nada.
func (s *WebhookService) Handle(ctx context.Context, msg domain.InboundMessage) (Outcome, error) {
	if msg.FromBot() {
		return Outcome{Ignored: true, Reason: IgnoredFromBot}, nil
	}
	if s.dedupe != nil && !s.dedupe.FirstDelivery(ctx, msg.ID) {
		s.logger.Info("duplicate delivery ignored", zap.String("message_id", msg.ID))
		return Outcome{Ignored: true, Reason: IgnoredDuplicate}, nil
	}

	decision := s.dispatcher.Dispatch(ctx, msg)
	if decision.Ignored {
		return Outcome{Ignored: true, Reason: IgnoredNoMention}, nil
	}

	entry, err := s.log.Record(ctx, domain.ConversationLogEntry{
		User:    msg.DisplayName,
		Message: decision.Message,
		Reply:   decision.Reply,
	})
	if err != nil {
		if s.dedupe != nil {
			s.dedupe.Forget(ctx, msg.ID)
		}
		return Outcome{Rule: decision.Rule}, err
	}

	// Se envía lo mismo que quedó registrado.
	s.notifier.Send(ctx, entry.Reply)

	s.logger.Info("message handled",
		zap.String("rule", decision.Rule),
		zap.String("user", msg.DisplayName),
		zap.String("log_id", entry.ID),
	)
	return Outcome{Rule: decision.Rule, Entry: entry}, nil
}
