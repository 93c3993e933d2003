// internal/application/query/dto/menu_dto.go
package dto

// Read-model DTOs for the menu browse screens.

type CategoryDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type MenuItemDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Calories    int     `json:"calories"`
	Protein     int     `json:"protein"`
	CategoryID  string  `json:"categoryId,omitempty"`
}

type CustomizationDTO struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Type  string  `json:"type"`
}

// MenuItemDetailDTO is the item page payload: the item plus the
// customizations that can be attached to it.
type MenuItemDetailDTO struct {
	MenuItemDTO
	Customizations []CustomizationDTO `json:"customizations"`
}
