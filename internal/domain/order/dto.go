// internal/domain/order/dto.go
package order

// CreateRequest is the checkout submission payload.
type CreateRequest struct {
	Address   string      `json:"address"`
	Items     []ItemInput `json:"items"`
	PromoCode string      `json:"promo_code,omitempty"`
}

type ItemInput struct {
	FoodID   int64 `json:"food_id"`
	Quantity int   `json:"quantity"`
}

// CreateResponse is the backend's answer to a successful checkout.
type CreateResponse struct {
	OrderID    int64   `json:"order_id"`
	TotalPrice float64 `json:"total_price,string"`
	Message    string  `json:"message"`
}
