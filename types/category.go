package types

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        string `json:"name"`
	Description *string `json:"description"`
}

type CreateSubcategoryRequest struct {
	CategoryId  int64  `json:"category_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateSubcategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}
