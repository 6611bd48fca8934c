// internal/checkout/service.go
package checkout

import (
	"context"

	"lazzat-client/internal/cart"
	"lazzat-client/internal/domain/order"
	xerrors "lazzat-client/internal/pkg/errors"

	"go.uber.org/zap"
)

// OrdersAPI is the slice of the backend order surface checkout consumes.
type OrdersAPI interface {
	Create(ctx context.Context, req order.CreateRequest) (*order.CreateResponse, error)
}

// Service turns the current cart into an order submission. The cart is
// cleared only after the backend accepts the order; any failure, including
// promo-code validation, leaves it intact.
type Service struct {
	cart   *cart.Manager
	orders OrdersAPI
	logger *zap.Logger
}

func NewService(cart *cart.Manager, orders OrdersAPI, logger *zap.Logger) *Service {
	return &Service{cart: cart, orders: orders, logger: logger}
}

func (s *Service) Submit(ctx context.Context, address, promoCode string) (*order.CreateResponse, error) {
	lines := s.cart.Lines()
	if len(lines) == 0 {
		return nil, xerrors.ErrCartEmpty
	}

	req := order.CreateRequest{
		Address:   address,
		PromoCode: promoCode,
		Items:     make([]order.ItemInput, 0, len(lines)),
	}
	for _, line := range lines {
		req.Items = append(req.Items, order.ItemInput{
			FoodID:   line.FoodID,
			Quantity: line.Quantity,
		})
	}

	resp, err := s.orders.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.cart.Clear()
	s.logger.Info("order placed",
		zap.Int64("order_id", resp.OrderID),
		zap.Float64("total", resp.TotalPrice))
	return resp, nil
}
