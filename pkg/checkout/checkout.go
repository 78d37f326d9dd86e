// Package checkout implements the order-creation workflow: validate
// the user and cart, debit stock per line, snapshot prices, and persist
// the resulting order.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storeflow/pkg/cart"
	"storeflow/pkg/catalog"
	"storeflow/pkg/logger"
	"storeflow/pkg/order"
	"storeflow/pkg/otel"
	"storeflow/pkg/user"
)

// ErrNotFound indicates a referenced user, product, or order does not
// exist. ErrInsufficientStock indicates a requested quantity exceeds
// the product's stock. Any other error from the workflow is an internal
// failure from an underlying store.
var (
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Service runs checkout against the three stores.
type Service struct {
	users    user.Repository
	products catalog.Repository
	orders   order.Repository
}

// New creates a checkout service.
func New(users user.Repository, products catalog.Repository, orders order.Repository) *Service {
	return &Service{users: users, products: products, orders: orders}
}

// CreateOrder validates the user, then processes cart lines in the
// order given: each line's product is resolved, its stock checked and
// decremented, and the updated product saved before the next line is
// touched. Stock updates land immediately per line, so a failure on a
// later line leaves earlier decrements in place even though no order is
// persisted. The order row itself, with all lines and the accumulated
// total, is written once at the end.
func (s *Service) CreateOrder(ctx context.Context, userID string, lines []cart.Line) (order.Order, error) {
	ctx, span := otel.AddSpan(ctx, "checkout.CreateOrder")
	defer span.End()

	usr, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return order.Order{}, fmt.Errorf("user %s: %w", userID, ErrNotFound)
		}
		return order.Order{}, fmt.Errorf("resolve user %s: %w", userID, err)
	}

	total := decimal.Zero
	orderLines := make([]order.Line, 0, len(lines))
	for _, l := range lines {
		p, err := s.products.Get(ctx, l.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return order.Order{}, fmt.Errorf("product %s: %w", l.ProductID, ErrNotFound)
			}
			return order.Order{}, fmt.Errorf("resolve product %s: %w", l.ProductID, err)
		}
		if l.Quantity > p.Stock {
			return order.Order{}, fmt.Errorf("product %s: requested %d, %d in stock: %w",
				p.ID, l.Quantity, p.Stock, ErrInsufficientStock)
		}

		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))

		p.Stock -= l.Quantity
		if err := s.products.Save(ctx, p); err != nil {
			return order.Order{}, fmt.Errorf("save product %s: %w", p.ID, err)
		}

		orderLines = append(orderLines, order.Line{
			ProductID: p.ID,
			Quantity:  l.Quantity,
			UnitPrice: p.Price,
		})
	}

	o := order.Order{
		ID:         uuid.NewString(),
		UserID:     usr.ID,
		Lines:      orderLines,
		TotalPrice: total,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return order.Order{}, fmt.Errorf("save order: %w", err)
	}

	logger.Log.Info("order created",
		zap.String("order_id", o.ID),
		zap.String("user_id", o.UserID),
		zap.Int("lines", len(o.Lines)),
		zap.String("total", o.TotalPrice.String()),
		zap.String("trace_id", otel.GetTraceID(ctx)),
	)
	return o, nil
}

// GetOrder fetches one order by ID.
func (s *Service) GetOrder(ctx context.Context, orderID string) (order.Order, error) {
	ctx, span := otel.AddSpan(ctx, "checkout.GetOrder")
	defer span.End()

	o, err := s.orders.Get(ctx, orderID)
	if errors.Is(err, order.ErrNotFound) {
		return order.Order{}, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
	}
	return o, err
}

// Orders lists all orders.
func (s *Service) Orders(ctx context.Context) ([]order.Order, error) {
	ctx, span := otel.AddSpan(ctx, "checkout.Orders")
	defer span.End()

	return s.orders.List(ctx)
}

// UserOrders lists one user's orders. A user with no orders gets an
// empty slice.
func (s *Service) UserOrders(ctx context.Context, userID string) ([]order.Order, error) {
	ctx, span := otel.AddSpan(ctx, "checkout.UserOrders")
	defer span.End()

	return s.orders.ListByUser(ctx, userID)
}
