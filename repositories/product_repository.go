package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"school-store/config"
	"school-store/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	var nutrition, variants []byte

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.BasePrice,
		&p.Category,
		&p.Description,
		&p.Image,
		&nutrition,
		&variants,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(nutrition, &p.Nutrition); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(variants, &p.Variants); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id, name, base_price, category, description, image, nutrition, variants, created_at, updated_at
	          FROM products ORDER BY created_at DESC`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) FindByID(ctx context.Context, id int) (*models.Product, error) {
	query := `SELECT id, name, base_price, category, description, image, nutrition, variants, created_at, updated_at
	          FROM products WHERE id = $1`

	p, err := scanProduct(config.DB.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	nutrition, err := json.Marshal(product.Nutrition)
	if err != nil {
		return err
	}
	variants, err := json.Marshal(product.Variants)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO products (name, base_price, category, description, image, nutrition, variants, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(ctx, query,
		product.Name,
		product.BasePrice,
		product.Category,
		product.Description,
		product.Image,
		nutrition,
		variants,
		now,
		now,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	nutrition, err := json.Marshal(product.Nutrition)
	if err != nil {
		return err
	}
	variants, err := json.Marshal(product.Variants)
	if err != nil {
		return err
	}

	query := `
		UPDATE products
		SET name = $1, base_price = $2, category = $3, description = $4,
		    image = $5, nutrition = $6, variants = $7, updated_at = $8
		WHERE id = $9
	`
	_, err = config.DB.Exec(ctx, query,
		product.Name,
		product.BasePrice,
		product.Category,
		product.Description,
		product.Image,
		nutrition,
		variants,
		time.Now(),
		product.ID,
	)
	return err
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	// Hard delete: orders carry their own item snapshots, so history
	// survives catalog removal.
	_, err := config.DB.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}
