package models

import "time"

const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
)

// statusTransitions is the legal-successor table for order statuses.
// Delivered and Cancelled are terminal.
var statusTransitions = map[string][]string{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered, StatusCancelled},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

func ValidStatus(status string) bool {
	_, ok := statusTransitions[status]
	return ok
}

// CanTransition reports whether an order may move from one status to
// another. Re-setting the current status is allowed as a no-op.
func CanTransition(from, to string) bool {
	if from == to {
		return ValidStatus(to)
	}
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderItem is a denormalized snapshot of a purchased line. It keeps the
// name, price and image as they were at checkout, so later catalog edits
// and deletes never rewrite order history.
type OrderItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
	Size      string  `json:"size,omitempty"`
	Image     string  `json:"image,omitempty"`
}

type Order struct {
	ID              int         `json:"id"`
	OrderID         string      `json:"order_id"`
	UserID          int         `json:"user_id"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total"`
	Student         string      `json:"student"`
	StudentClass    string      `json:"student_class"`
	StudentDivision string      `json:"student_division"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
