package dto

type CategoryCreateRequest struct {
	CategoryName string `json:"category_name" binding:"required"`
}

type CategoryResponse struct {
	ID           uint   `json:"id"`
	CategoryName string `json:"category_name"`
}
