// internal/domain/order/entity.go
package order

type Status string

const (
	StatusNew       Status = "new"
	StatusPreparing Status = "preparing"
	StatusDelivered Status = "delivered"
)

type Order struct {
	ID         int64   `json:"id"`
	Address    string  `json:"address"`
	TotalPrice float64 `json:"total_price,string"`
	Status     Status  `json:"status"`
	PromoCode  string  `json:"promo_code,omitempty"`
	CreatedAt  string  `json:"created_at"`
	Items      []Item  `json:"items,omitempty"`
}

type Item struct {
	FoodID   int64   `json:"food_id"`
	FoodName string  `json:"food_name,omitempty"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price,string"`
}
