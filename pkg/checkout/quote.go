package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"storeflow/pkg/cart"
	"storeflow/pkg/catalog"
	"storeflow/pkg/otel"
)

// QuoteLine is one priced cart line for display.
type QuoteLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Quote is a priced view of a cart. It reflects current catalog prices
// and implies nothing about stock.
type Quote struct {
	Lines []QuoteLine     `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

const maxQuoteFetches = 8

// Quote prices the given cart lines against the current catalog,
// resolving products concurrently. Line order is preserved.
func (s *Service) Quote(ctx context.Context, lines []cart.Line) (Quote, error) {
	ctx, span := otel.AddSpan(ctx, "checkout.Quote")
	defer span.End()

	quoted := make([]QuoteLine, len(lines))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxQuoteFetches)

	for i, l := range lines {
		i, l := i, l
		g.Go(func() error {
			p, err := s.products.Get(ctx, l.ProductID)
			if err != nil {
				if errors.Is(err, catalog.ErrNotFound) {
					return fmt.Errorf("product %s: %w", l.ProductID, ErrNotFound)
				}
				return fmt.Errorf("resolve product %s: %w", l.ProductID, err)
			}
			lineTotal := p.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
			quoted[i] = QuoteLine{
				ProductID: p.ID,
				Name:      p.Name,
				Quantity:  l.Quantity,
				UnitPrice: p.Price,
				LineTotal: lineTotal,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Quote{}, err
	}

	total := decimal.Zero
	for _, q := range quoted {
		total = total.Add(q.LineTotal)
	}
	return Quote{Lines: quoted, Total: total}, nil
}
