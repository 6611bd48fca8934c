// internal/domain/food/entity.go
package food

type Category string

const (
	CategoryFastFood Category = "fastfood"
	CategoryNational Category = "national"
	CategoryDrink    Category = "drink"
	CategoryDessert  Category = "dessert"
)

// Food is one catalog entry as served by the backend. Price arrives as a
// decimal string ("10.00") and is decoded into a float; totals are rounded
// at display time only.
type Food struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price,string"`
	Category  Category `json:"category"`
	Available bool     `json:"is_available"`
	Image     string   `json:"image,omitempty"`
	CreatedAt string   `json:"created_at,omitempty"`
}
