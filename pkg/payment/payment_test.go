package payment

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storeflow/pkg/order"
)

func TestStubProcess(t *testing.T) {
	stub := NewStub(zap.NewNop())
	o := order.Order{ID: "1", TotalPrice: decimal.NewFromFloat(700.0)}
	if !stub.Process(context.Background(), o) {
		t.Fatal("expected stub payment to succeed")
	}
}
