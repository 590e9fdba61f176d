package category

type CreateCategoryRequest struct {
	Name string  `json:"name" binding:"required,max=255"`
	Icon *string `json:"icon" binding:"omitempty,max=255"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=255"`
	Icon *string `json:"icon" binding:"omitempty,max=255"`
}

type CategoryResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Icon      *string `json:"icon"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}
