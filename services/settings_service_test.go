package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-store/models"
)

func TestSettingsSeededOnFirstRead(t *testing.T) {
	store := &fakeSettingsStore{}
	svc := NewSettingsService(store)

	settings, err := svc.GetOrCreate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultClasses, settings.Classes)
	assert.Equal(t, models.DefaultDivisions, settings.Divisions)
	assert.NotNil(t, store.stored)

	// Second read returns the stored row, not a fresh seed.
	again, err := svc.GetOrCreate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)
}

func TestSettingsReplace(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsStore{})
	ctx := context.Background()

	updated, err := svc.Replace(ctx, models.UpdateSettingsRequest{
		Classes: []string{"Nursery", "KG", "1st"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Nursery", "KG", "1st"}, updated.Classes)
	// Absent list keeps its current value.
	assert.Equal(t, models.DefaultDivisions, updated.Divisions)

	// An explicitly empty list replaces.
	updated, err = svc.Replace(ctx, models.UpdateSettingsRequest{Divisions: []string{}})
	require.NoError(t, err)
	assert.Empty(t, updated.Divisions)
	assert.Equal(t, []string{"Nursery", "KG", "1st"}, updated.Classes)
}
