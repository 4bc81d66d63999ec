package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"groupme-bot/internal/config"
	"groupme-bot/internal/domain"
)

var ErrInvalidFactRule = errors.New("invalid fact rule")

var (
	greetingPattern = regexp.MustCompile(`(?i)^hello`)
	searchPattern   = regexp.MustCompile(`(?i)^search\s+`)
)

// Request es el mensaje ya limpio que ven las reglas.
type Request struct {
	Text        string
	DisplayName string
}

// Rule es un par (predicado, handler). La primera regla que matchea decide la respuesta.
type Rule struct {
	Name    string
	Matches func(req Request) bool
	Respond func(ctx context.Context, req Request) string
}

// Decision es la salida del dispatcher para un mensaje.
type Decision struct {
	Ignored bool
	Rule    string
	// Message es el texto original recortado, antes de quitar la mención.
	Message string
	Reply   string
}

// DispatcherOptions agrupa la política de menciones de un deployment.
type DispatcherOptions struct {
	MentionToken    string
	MentionRequired bool
}

// Dispatcher clasifica un mensaje contra una lista ordenada de reglas más un fallback terminal.
type Dispatcher struct {
	rules    []Rule
	fallback Rule
	mention  *regexp.Regexp
}

// NewDispatcher arma la cadena: saludo, datos fijos, búsqueda, IA (si está habilitada) y uso.
func NewDispatcher(facts []config.FactRule, searcher *SearchResponder, ai *AIResponder, opts DispatcherOptions) (*Dispatcher, error) {
	factRules, err := NewFactRules(facts)
	if err != nil {
		return nil, err
	}

	rules := make([]Rule, 0, len(factRules)+3)
	rules = append(rules, GreetingRule())
	rules = append(rules, factRules...)
	rules = append(rules, SearchRule(searcher))
	if ai.Enabled() {
		rules = append(rules, AIRule(ai))
	}

	return NewRuleDispatcher(rules, opts), nil
}

// NewRuleDispatcher permite armar un dispatcher con reglas arbitrarias.
func NewRuleDispatcher(rules []Rule, opts DispatcherOptions) *Dispatcher {
	d := &Dispatcher{
		rules:    rules,
		fallback: UsageRule(),
	}
	if opts.MentionRequired && strings.TrimSpace(opts.MentionToken) != "" {
		d.mention = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(strings.TrimSpace(opts.MentionToken)))
	}
	return d
}

// Dispatch nunca falla: si nada matchea se usa el fallback de uso.
func (d *Dispatcher) Dispatch(ctx context.Context, msg domain.InboundMessage) Decision {
	original := strings.TrimSpace(msg.Text)
	text := original

	if d.mention != nil {
		if !d.mention.MatchString(text) {
			return Decision{Ignored: true, Message: original}
		}
		text = strings.TrimSpace(d.mention.ReplaceAllString(text, ""))
	}

	req := Request{Text: text, DisplayName: msg.DisplayName}
	rule := d.fallback
	for _, r := range d.rules {
		if r.Matches(req) {
			rule = r
			break
		}
	}

	return Decision{
		Rule:    rule.Name,
		Message: original,
		Reply:   rule.Respond(ctx, req),
	}
}

// Rules devuelve los nombres en orden de evaluación, incluido el fallback.
func (d *Dispatcher) Rules() []string {
	names := make([]string, 0, len(d.rules)+1)
	for _, r := range d.rules {
		names = append(names, r.Name)
	}
	return append(names, d.fallback.Name)
}

func GreetingRule() Rule {
	return Rule{
		Name:    "greeting",
		Matches: func(req Request) bool { return greetingPattern.MatchString(req.Text) },
		Respond: func(_ context.Context, req Request) string {
			return fmt.Sprintf("Hi %s! 👋", req.DisplayName)
		},
	}
}

// NewFactRules compila los patrones en el orden recibido, sin distinguir mayúsculas.
func NewFactRules(facts []config.FactRule) ([]Rule, error) {
	rules := make([]Rule, 0, len(facts))
	for i, f := range facts {
		if strings.TrimSpace(f.Pattern) == "" || strings.TrimSpace(f.Reply) == "" {
			return nil, fmt.Errorf("%w: fact %d needs pattern and reply", ErrInvalidFactRule, i)
		}
		re, err := regexp.Compile(`(?i)` + f.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: fact %d: %v", ErrInvalidFactRule, i, err)
		}
		reply := strings.TrimSpace(f.Reply)
		rules = append(rules, Rule{
			Name:    fmt.Sprintf("fact:%d", i),
			Matches: func(req Request) bool { return re.MatchString(req.Text) },
			Respond: func(context.Context, Request) string { return reply },
		})
	}
	return rules, nil
}

func SearchRule(searcher *SearchResponder) Rule {
	return Rule{
		Name:    "search",
		Matches: func(req Request) bool { return searchPattern.MatchString(req.Text) },
		Respond: func(ctx context.Context, req Request) string {
			query := searchPattern.ReplaceAllString(req.Text, "")
			return searcher.Search(ctx, query).Render(searchFallbacks)
		},
	}
}

func AIRule(ai *AIResponder) Rule {
	return Rule{
		Name:    "ai",
		Matches: func(Request) bool { return true },
		Respond: func(ctx context.Context, req Request) string {
			return ai.Chat(ctx, req.Text, req.DisplayName).Render(aiFallbacks)
		},
	}
}

func UsageRule() Rule {
	return Rule{
		Name:    "usage",
		Matches: func(Request) bool { return true },
		Respond: func(context.Context, Request) string { return UsageReply },
	}
}
