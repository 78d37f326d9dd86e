// Package payment holds the payment collaborator. The current
// implementation is a stub that approves every charge.
package payment

import (
	"context"

	"go.uber.org/zap"

	"storeflow/pkg/order"
)

// Processor decides whether an order's payment went through.
type Processor interface {
	Process(ctx context.Context, o order.Order) bool
}

// Stub approves every payment. It runs after the order is persisted,
// so a false return from a real processor would leave the order row in
// place; callers surface that as a failed placement.
type Stub struct {
	log *zap.Logger
}

// NewStub creates a stub processor.
func NewStub(log *zap.Logger) *Stub {
	return &Stub{log: log}
}

// Process always reports success.
func (s *Stub) Process(ctx context.Context, o order.Order) bool {
	s.log.Info("processing payment",
		zap.String("order_id", o.ID),
		zap.String("total", o.TotalPrice.String()),
	)
	return true
}
