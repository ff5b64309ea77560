package dto

type CreateMenuItemInput struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Price    float64 `json:"price" binding:"required"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
}

// UpdateMenuItemInput carries full-replace semantics: every field is written
// back on update, so a field omitted from the request body clears the stored
// value instead of leaving it untouched.
type UpdateMenuItemInput struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
}
