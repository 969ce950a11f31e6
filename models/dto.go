package models

type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

type CreateProductRequest struct {
	Name        string    `json:"name" binding:"required"`
	BasePrice   float64   `json:"base_price" binding:"required,gt=0"`
	Category    string    `json:"category" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Image       string    `json:"image"`
	Nutrition   []string  `json:"nutrition"`
	Variants    []Variant `json:"variants"`
}

type UpdateProductRequest struct {
	Name        string    `json:"name"`
	BasePrice   float64   `json:"base_price"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Nutrition   []string  `json:"nutrition"`
	Variants    []Variant `json:"variants"`
}

type OrderItemRequest struct {
	ProductID int     `json:"product_id" binding:"required"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty" binding:"required,gt=0"`
	Size      string  `json:"size"`
}

type CreateOrderRequest struct {
	OrderID         string             `json:"order_id"`
	Items           []OrderItemRequest `json:"items" binding:"required"`
	Total           float64            `json:"total"`
	Student         string             `json:"student" binding:"required"`
	StudentClass    string             `json:"student_class" binding:"required"`
	StudentDivision string             `json:"student_division" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateSettingsRequest struct {
	Classes   []string `json:"classes"`
	Divisions []string `json:"divisions"`
}

type AddCartItemRequest struct {
	ProductID int    `json:"product_id" binding:"required"`
	Size      string `json:"size"`
}

type UpdateCartItemRequest struct {
	ProductID int    `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Qty       int    `json:"qty"`
}
