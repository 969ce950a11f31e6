package models

// CartLine is one entry of a user's cart. Identity is (ProductID, Size):
// adding the same product in the same size merges into the existing line.
type CartLine struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Image     string  `json:"image,omitempty"`
	Price     float64 `json:"price"`
	Size      string  `json:"size,omitempty"`
	Qty       int     `json:"qty"`
}

// Cart is the wire shape of a cart read: the lines plus the derived
// subtotal and item count.
type Cart struct {
	Items    []CartLine `json:"items"`
	Subtotal float64    `json:"subtotal"`
	Count    int        `json:"count"`
}

// NewCart recomputes subtotal and count from the given lines.
func NewCart(lines []CartLine) Cart {
	cart := Cart{Items: lines}
	if cart.Items == nil {
		cart.Items = []CartLine{}
	}
	for _, line := range lines {
		cart.Subtotal += line.Price * float64(line.Qty)
		cart.Count += line.Qty
	}
	return cart
}
