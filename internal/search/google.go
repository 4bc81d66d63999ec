package search

import (
	"context"
	"fmt"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// Result es el primer resultado devuelto por el proveedor.
type Result struct {
	Title string
	Link  string
}

// Client define la búsqueda de un único resultado. found=false indica cero resultados.
type Client interface {
	TopResult(ctx context.Context, query string) (result Result, found bool, err error)
}

// GoogleClient consulta Google Custom Search pidiendo un solo resultado.
type GoogleClient struct {
	svc *customsearch.Service
	cx  string
}

// NewGoogleClient crea el servicio. opts permite apuntar a otro endpoint (tests).
func NewGoogleClient(ctx context.Context, apiKey, cx string, opts ...option.ClientOption) (*GoogleClient, error) {
	clientOpts := append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := customsearch.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("customsearch service: %w", err)
	}
	return &GoogleClient{svc: svc, cx: cx}, nil
}

func (c *GoogleClient) TopResult(ctx context.Context, query string) (Result, bool, error) {
	res, err := c.svc.Cse.List().Cx(c.cx).Q(query).Num(1).Context(ctx).Do()
	if err != nil {
		return Result{}, false, fmt.Errorf("cse list: %w", err)
	}
	if len(res.Items) == 0 || res.Items[0] == nil {
		return Result{}, false, nil
	}
	item := res.Items[0]
	return Result{Title: item.Title, Link: item.Link}, true, nil
}
