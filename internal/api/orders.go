// internal/api/orders.go
package api

import (
	"context"
	"fmt"
	"net/http"

	"lazzat-client/internal/domain/order"
)

// OrdersService wraps the order endpoints, including the admin surface.
type OrdersService struct {
	client *Client
}

func NewOrdersService(client *Client) *OrdersService {
	return &OrdersService{client: client}
}

func (s *OrdersService) Create(ctx context.Context, req order.CreateRequest) (*order.CreateResponse, error) {
	var resp order.CreateResponse
	if err := s.client.doJSON(ctx, http.MethodPost, "/orders/create/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *OrdersService) Mine(ctx context.Context) ([]order.Order, error) {
	var orders []order.Order
	if err := s.client.doJSON(ctx, http.MethodGet, "/orders/my/", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrdersService) Detail(ctx context.Context, id int64) (*order.Order, error) {
	var o order.Order
	if err := s.client.doJSON(ctx, http.MethodGet, fmt.Sprintf("/orders/%d/", id), nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *OrdersService) All(ctx context.Context) ([]order.Order, error) {
	var orders []order.Order
	if err := s.client.doJSON(ctx, http.MethodGet, "/orders/admin/orders/", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrdersService) UpdateStatus(ctx context.Context, id int64, status order.Status) (*order.Order, error) {
	payload := map[string]order.Status{"status": status}

	var o order.Order
	if err := s.client.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/orders/admin/orders/%d/status/", id), payload, &o); err != nil {
		return nil, err
	}
	return &o, nil
}
