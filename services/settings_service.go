package services

import (
	"context"

	"school-store/models"
)

type SettingsStore interface {
	Find(ctx context.Context) (*models.Settings, error)
	Create(ctx context.Context, settings *models.Settings) error
	Update(ctx context.Context, settings *models.Settings) error
}

type SettingsService struct {
	settings SettingsStore
}

func NewSettingsService(settings SettingsStore) *SettingsService {
	return &SettingsService{settings: settings}
}

// GetOrCreate returns the settings singleton, seeding it with the stock
// class and division lists on first read.
func (s *SettingsService) GetOrCreate(ctx context.Context) (*models.Settings, error) {
	settings, err := s.settings.Find(ctx)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	settings = &models.Settings{
		Classes:   append([]string(nil), models.DefaultClasses...),
		Divisions: append([]string(nil), models.DefaultDivisions...),
	}
	if err := s.settings.Create(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Replace overwrites whichever lists the request carries; an absent list
// keeps its current value (an explicitly empty one replaces).
func (s *SettingsService) Replace(ctx context.Context, req models.UpdateSettingsRequest) (*models.Settings, error) {
	settings, err := s.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	if req.Classes != nil {
		settings.Classes = req.Classes
	}
	if req.Divisions != nil {
		settings.Divisions = req.Divisions
	}

	if err := s.settings.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
