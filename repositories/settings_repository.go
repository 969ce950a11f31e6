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

type SettingsRepository struct{}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

// Find returns the singleton settings row, or nil when it has not been
// created yet.
func (r *SettingsRepository) Find(ctx context.Context) (*models.Settings, error) {
	query := `SELECT id, classes, divisions, created_at, updated_at FROM settings ORDER BY id LIMIT 1`

	var s models.Settings
	var classes, divisions []byte

	err := config.DB.QueryRow(ctx, query).Scan(&s.ID, &classes, &divisions, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(classes, &s.Classes); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(divisions, &s.Divisions); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Create(ctx context.Context, settings *models.Settings) error {
	classes, err := json.Marshal(settings.Classes)
	if err != nil {
		return err
	}
	divisions, err := json.Marshal(settings.Divisions)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO settings (classes, divisions, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(ctx, query, classes, divisions, now, now).
		Scan(&settings.ID, &settings.CreatedAt, &settings.UpdatedAt)
}

func (r *SettingsRepository) Update(ctx context.Context, settings *models.Settings) error {
	classes, err := json.Marshal(settings.Classes)
	if err != nil {
		return err
	}
	divisions, err := json.Marshal(settings.Divisions)
	if err != nil {
		return err
	}

	query := `UPDATE settings SET classes = $1, divisions = $2, updated_at = $3 WHERE id = $4`
	_, err = config.DB.Exec(ctx, query, classes, divisions, time.Now(), settings.ID)
	return err
}
