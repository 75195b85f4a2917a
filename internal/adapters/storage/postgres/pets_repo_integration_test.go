//go:build integration

package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"pet-intake/internal/domain/pets"
)

func newTestRepo(t *testing.T) *PetsRepo {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:18-alpine",
		tcpostgres.WithDatabase("pet_intake_test"),
		tcpostgres.WithUsername("pet"),
		tcpostgres.WithPassword("pet_test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, EnsureSchema(ctx, db))
	require.NoError(t, EnsureSchema(ctx, db), "schema must be idempotent")

	return NewPetsRepo(db)
}

func TestPetsRepo_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	p := pets.Pet{
		ID:             "p-1",
		Name:           "Milo",
		Species:        "dog",
		Breed:          "mixed",
		Location:       "Colombo",
		AgeMonths:      14,
		Gender:         pets.GenderMale,
		Reason:         pets.ReasonTemporary,
		FosterDuration: "3",
		ContactEmail:   "owner@example.com",
		ContactPhone:   "0712345678",
		OwnerName:      "Ana",
		NationalID:     "901234567V",
		PhysicalStatus: pets.PhysicalApproved,
	}
	p.ApplyPricing(pets.DiscountFifteen)

	require.NoError(t, repo.Create(ctx, p))
	assert.ErrorIs(t, repo.Create(ctx, p), pets.ErrAlreadyExists)

	got, err := repo.GetByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	p.Location = "Kandy"
	require.NoError(t, repo.Update(ctx, p))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Kandy", items[0].Location)

	require.NoError(t, repo.Delete(ctx, "p-1"))
	_, err = repo.GetByID(ctx, "p-1")
	assert.True(t, errors.Is(err, pets.ErrNotFound))
	assert.ErrorIs(t, repo.Delete(ctx, "p-1"), pets.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, p), pets.ErrNotFound)
}
