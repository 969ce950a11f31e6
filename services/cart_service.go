package services

import (
	"context"

	"school-store/models"
)

// CartStore is the persistence boundary of the cart: every mutation goes
// load → change → save through it. Implementations: Redis-backed with a
// session TTL, or in-memory.
type CartStore interface {
	Get(ctx context.Context, userID int) ([]models.CartLine, error)
	Save(ctx context.Context, userID int, lines []models.CartLine) error
	Clear(ctx context.Context, userID int) error
}

type CartService struct {
	store    CartStore
	products ProductStore
}

func NewCartService(store CartStore, products ProductStore) *CartService {
	return &CartService{store: store, products: products}
}

func (s *CartService) Get(ctx context.Context, userID int) (models.Cart, error) {
	lines, err := s.store.Get(ctx, userID)
	if err != nil {
		return models.Cart{}, err
	}
	return models.NewCart(lines), nil
}

// Add puts one unit of a product (in the given size, if any) into the
// cart. The unit price comes from the catalog, never from the client.
// A line already holding the same (product, size) absorbs the unit.
func (s *CartService) Add(ctx context.Context, userID, productID int, size string) (models.Cart, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return models.Cart{}, err
	}
	if product == nil {
		return models.Cart{}, ErrProductNotFound
	}

	price, ok := product.PriceFor(size)
	if !ok {
		return models.Cart{}, ErrUnknownVariant
	}

	lines, err := s.store.Get(ctx, userID)
	if err != nil {
		return models.Cart{}, err
	}

	merged := false
	for i := range lines {
		if lines[i].ProductID == productID && lines[i].Size == size {
			lines[i].Qty++
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, models.CartLine{
			ProductID: productID,
			Name:      product.Name,
			Image:     product.Image,
			Price:     price,
			Size:      size,
			Qty:       1,
		})
	}

	if err := s.store.Save(ctx, userID, lines); err != nil {
		return models.Cart{}, err
	}
	return models.NewCart(lines), nil
}

// SetQuantity overwrites a line's quantity; anything below one removes
// the line. A missing line is left alone.
func (s *CartService) SetQuantity(ctx context.Context, userID, productID int, size string, qty int) (models.Cart, error) {
	lines, err := s.store.Get(ctx, userID)
	if err != nil {
		return models.Cart{}, err
	}

	if qty < 1 {
		lines = removeLine(lines, productID, size)
	} else {
		for i := range lines {
			if lines[i].ProductID == productID && lines[i].Size == size {
				lines[i].Qty = qty
				break
			}
		}
	}

	if err := s.store.Save(ctx, userID, lines); err != nil {
		return models.Cart{}, err
	}
	return models.NewCart(lines), nil
}

func (s *CartService) Remove(ctx context.Context, userID, productID int, size string) (models.Cart, error) {
	return s.SetQuantity(ctx, userID, productID, size, 0)
}

func (s *CartService) Clear(ctx context.Context, userID int) error {
	return s.store.Clear(ctx, userID)
}

func removeLine(lines []models.CartLine, productID int, size string) []models.CartLine {
	kept := lines[:0]
	for _, line := range lines {
		if line.ProductID == productID && line.Size == size {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}
