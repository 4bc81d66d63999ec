package service

import "groupme-bot/internal/domain"

// Textos fijos visibles para el usuario.
const (
	SearchNotConfiguredReply = "🔍 Google search not configured."
	SearchNoResultsReply     = "No results found."
	SearchErrorReply         = "Search error."
	AIErrorReply             = "AI error."
	UsageReply               = "Try saying 'hello', 'search ...', or enable OpenAI for chat."
)

var searchFallbacks = map[domain.ReplyErrorKind]string{
	domain.ReplyNotConfigured: SearchNotConfiguredReply,
	domain.ReplyNoResults:     SearchNoResultsReply,
	domain.ReplyProviderError: SearchErrorReply,
}

var aiFallbacks = map[domain.ReplyErrorKind]string{
	domain.ReplyNotConfigured: AIErrorReply,
	domain.ReplyNoResults:     AIErrorReply,
	domain.ReplyProviderError: AIErrorReply,
}
