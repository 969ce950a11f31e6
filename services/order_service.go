package services

import (
	"context"
	"errors"
	"log"
	"math"

	"github.com/jackc/pgx/v5/pgconn"

	"school-store/models"
	"school-store/utils"
)

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByUser(ctx context.Context, userID int) ([]models.Order, error)
	FindByID(ctx context.Context, id int) (*models.Order, error)
	FindByOrderID(ctx context.Context, orderID string) (*models.Order, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}

// Mailer sends the post-checkout confirmation. Nil mailer means email is
// not configured.
type Mailer interface {
	SendOrderConfirmation(toEmail string, order *models.Order) error
}

type OrderService struct {
	orders   OrderStore
	products ProductStore
	cart     CartStore
	mailer   Mailer
}

func NewOrderService(orders OrderStore, products ProductStore, cart CartStore, mailer Mailer) *OrderService {
	return &OrderService{orders: orders, products: products, cart: cart, mailer: mailer}
}

// Create records a checkout. Line prices and the total are recomputed
// from the authoritative catalog; a submitted total that disagrees is
// rejected rather than trusted. The public order id doubles as an
// idempotency key: replaying a create with an id the user already
// recorded returns the existing order instead of inserting a duplicate.
// The bool result is false for such replays.
func (s *OrderService) Create(ctx context.Context, userID int, userEmail string, req models.CreateOrderRequest) (*models.Order, bool, error) {
	if len(req.Items) == 0 {
		return nil, false, ErrNoItems
	}

	orderID := req.OrderID
	if orderID == "" {
		orderID = utils.GenerateOrderID()
	}

	existing, err := s.orders.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		if existing.UserID != userID {
			return nil, false, ErrOrderIDTaken
		}
		return existing, false, nil
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	var total float64
	for _, item := range req.Items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, false, err
		}
		if product == nil {
			return nil, false, ErrProductNotFound
		}

		price, ok := product.PriceFor(item.Size)
		if !ok {
			return nil, false, ErrUnknownVariant
		}

		total += price * float64(item.Qty)
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     price,
			Qty:       item.Qty,
			Size:      item.Size,
			Image:     product.Image,
		})
	}

	if math.Abs(req.Total-total) > 0.005 {
		return nil, false, ErrTotalMismatch
	}

	order := &models.Order{
		OrderID:         orderID,
		UserID:          userID,
		Items:           items,
		Total:           total,
		Student:         req.Student,
		StudentClass:    req.StudentClass,
		StudentDivision: req.StudentDivision,
		Status:          models.StatusPending,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		// Two checkouts racing on the same order id both miss the read
		// above; the loser's insert hits the unique index. That is a
		// replay, not a failure.
		if isUniqueViolation(err) {
			stored, lookupErr := s.orders.FindByOrderID(ctx, orderID)
			if lookupErr != nil {
				return nil, false, lookupErr
			}
			if stored != nil {
				if stored.UserID != userID {
					return nil, false, ErrOrderIDTaken
				}
				return stored, false, nil
			}
		}
		return nil, false, err
	}

	// The purchased items leave the cart with the checkout.
	if s.cart != nil {
		if err := s.cart.Clear(ctx, userID); err != nil {
			log.Printf("Failed to clear cart for user %d after checkout: %v", userID, err)
		}
	}

	if s.mailer != nil && userEmail != "" {
		go func(email string, o models.Order) {
			if err := s.mailer.SendOrderConfirmation(email, &o); err != nil {
				log.Printf("Failed to send order confirmation for %s: %v", o.OrderID, err)
			}
		}(userEmail, *order)
	}

	return order, true, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// List returns every order for admins, and only the caller's own orders
// otherwise; newest first either way.
func (s *OrderService) List(ctx context.Context, userID int, isAdmin bool) ([]models.Order, error) {
	if isAdmin {
		return s.orders.FindAll(ctx)
	}
	return s.orders.FindByUser(ctx, userID)
}

// UpdateStatus moves an order along the status table. Re-setting the
// current status is a no-op success; anything off the table is rejected.
func (s *OrderService) UpdateStatus(ctx context.Context, id int, status string) (*models.Order, error) {
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if order.Status == status {
		return order, nil
	}
	if !models.CanTransition(order.Status, status) {
		return nil, ErrIllegalTransition
	}

	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}
