package domain

// ReplyErrorKind identifica por que un responder no pudo producir texto.
type ReplyErrorKind string

const (
	ReplyNotConfigured ReplyErrorKind = "not_configured"
	ReplyNoResults     ReplyErrorKind = "no_results"
	ReplyProviderError ReplyErrorKind = "provider_error"
)

// Reply es el resultado etiquetado de un responder: Ok(texto) o Fail(tipo).
// El texto visible para el usuario se decide recien en Render.
type Reply struct {
	Text  string
	Kind  ReplyErrorKind
	Cause error
}

func Ok(text string) Reply {
	return Reply{Text: text}
}

func Fail(kind ReplyErrorKind, cause error) Reply {
	return Reply{Kind: kind, Cause: cause}
}

func (r Reply) OK() bool {
	return r.Kind == ""
}

// Render devuelve el texto del resultado o el fallback asociado a su tipo de error.
func (r Reply) Render(fallbacks map[ReplyErrorKind]string) string {
	if r.OK() {
		return r.Text
	}
	return fallbacks[r.Kind]
}
