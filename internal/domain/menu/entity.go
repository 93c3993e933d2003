// internal/domain/menu/entity.go
package menu

import "errors"

var (
	ErrNotFound = errors.New("menu: not found")
)

// Category groups menu items (e.g. "Burgers", "Pizzas").
type Category struct {
	ID          string `json:"id" firestore:"id"`
	Name        string `json:"name" firestore:"name"`
	Description string `json:"description" firestore:"description"`
}

// Item is a sellable menu entry. ImageURL points at the object uploaded by the
// seeder (or any externally hosted image).
type Item struct {
	ID          string  `json:"id" firestore:"id"`
	Name        string  `json:"name" firestore:"name"`
	Description string  `json:"description" firestore:"description"`
	ImageURL    string  `json:"imageUrl" firestore:"imageUrl"`
	Price       float64 `json:"price" firestore:"price"`
	Rating      float64 `json:"rating" firestore:"rating"`
	Calories    int     `json:"calories" firestore:"calories"`
	Protein     int     `json:"protein" firestore:"protein"`
	CategoryID  string  `json:"categoryId" firestore:"categoryId"`
}

// Customization is a catalog-side modifier that can be attached to an item.
// The cart copies the fields it needs at add time (see domain/cart).
type Customization struct {
	ID    string  `json:"id" firestore:"id"`
	Name  string  `json:"name" firestore:"name"`
	Price float64 `json:"price" firestore:"price"`
	Type  string  `json:"type" firestore:"type"`
}
