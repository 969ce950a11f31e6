package services

import (
	"context"
	"strings"

	"school-store/models"
	"school-store/utils"
)

type ProductStore interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id int) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id int) error
}

type ProductService struct {
	products ProductStore
}

func NewProductService(products ProductStore) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.products.FindAll(ctx)
}

func (s *ProductService) Get(ctx context.Context, id int) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:        req.Name,
		BasePrice:   req.BasePrice,
		Category:    req.Category,
		Description: req.Description,
		Image:       req.Image,
		Nutrition:   req.Nutrition,
		Variants:    req.Variants,
	}
	if product.Nutrition == nil {
		product.Nutrition = []string{}
	}
	if product.Variants == nil {
		product.Variants = []models.Variant{}
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id int, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.BasePrice > 0 {
		product.BasePrice = req.BasePrice
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Image != "" {
		product.Image = req.Image
	}
	if req.Nutrition != nil {
		product.Nutrition = req.Nutrition
	}
	if req.Variants != nil {
		product.Variants = req.Variants
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id int) error {
	product, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}

	// Locally uploaded images go with the product; external URLs stay.
	if product.Image != "" && !strings.HasPrefix(product.Image, "http") {
		utils.DeleteFile(product.Image)
	}
	return nil
}

// SetImage points the product at a freshly uploaded file and removes the
// previous local upload, if any.
func (s *ProductService) SetImage(ctx context.Context, id int, imagePath string) (*models.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if product.Image != "" && !strings.HasPrefix(product.Image, "http") {
		utils.DeleteFile(product.Image)
	}

	product.Image = imagePath
	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}
