// internal/domain/cart/entity.go
package cart

import "lazzat-client/internal/domain/food"

// Line is one aggregated cart entry keyed by food id. Name, price, category
// and availability are snapshotted at add time; later catalog edits do not
// reach lines already in the cart.
type Line struct {
	FoodID    int64         `json:"food_id"`
	Name      string        `json:"name"`
	Price     float64       `json:"price"`
	Category  food.Category `json:"category"`
	Available bool          `json:"is_available"`
	Image     string        `json:"image,omitempty"`
	Quantity  int           `json:"quantity"`
}

// Subtotal is price x quantity for this line.
func (l Line) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// NewLine snapshots a catalog food into a cart line with quantity 1.
func NewLine(f food.Food) Line {
	return Line{
		FoodID:    f.ID,
		Name:      f.Name,
		Price:     f.Price,
		Category:  f.Category,
		Available: f.Available,
		Image:     f.Image,
		Quantity:  1,
	}
}
