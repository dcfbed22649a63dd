package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"creator-kita.backend/internal/domain/entities"
	domainerrors "creator-kita.backend/internal/domain/errors"
)

func newCreator(creatorID, displayName string) *entities.Creator {
	now := time.Now()
	return &entities.Creator{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		CreatorID:   creatorID,
		DisplayName: displayName,
		Status:      entities.UserStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestCreatorRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	createCreatorTables(t, db)
	repo := NewCreatorRepository(db)
	ctx := context.Background()

	c := newCreator("CA00001", "Alice")
	c.Bio.SetValid("travel vlogs")
	c.SocialMedia.Instagram.SetValid("alice.gram")
	require.NoError(t, repo.Create(ctx, c))

	byID, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "CA00001", byID.CreatorID)
	require.Equal(t, "alice.gram", byID.SocialMedia.Instagram.String)

	byUser, err := repo.GetByUserID(ctx, c.UserID)
	require.NoError(t, err)
	require.Equal(t, c.ID, byUser.ID)

	c.DisplayName = "Alice Updated"
	c.SocialMedia.YouTube.SetValid("alice-tube")
	require.NoError(t, repo.Update(ctx, c))

	updated, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice Updated", updated.DisplayName)
	require.Equal(t, "alice-tube", updated.SocialMedia.YouTube.String)

	require.NoError(t, repo.UpdateStatus(ctx, c.ID, entities.UserStatusActive))
	active, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, entities.UserStatusActive, active.Status)
}

func TestCreatorRepository_ListFiltersByStatus(t *testing.T) {
	db := newTestDB(t)
	createCreatorTables(t, db)
	repo := NewCreatorRepository(db)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		c := newCreator(fmt.Sprintf("CA%05d", i), fmt.Sprintf("creator-%d", i))
		if i == 3 {
			c.Status = entities.UserStatusActive
		}
		require.NoError(t, repo.Create(ctx, c))
	}

	pending, total, err := repo.List(ctx, entities.UserStatusPending, 1, 10)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, pending, 2)

	all, total, err := repo.List(ctx, "", 1, 2)
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, all, 2)
	require.Equal(t, "CA00001", all[0].CreatorID)
}

func TestCreatorRepository_NextCreatorIDStartsAtOne(t *testing.T) {
	db := newTestDB(t)
	createCreatorTables(t, db)
	repo := NewCreatorRepository(db)
	ctx := context.Background()

	id, err := repo.NextCreatorID(ctx)
	require.NoError(t, err)
	require.Equal(t, "CA00001", id)

	id, err = repo.NextCreatorID(ctx)
	require.NoError(t, err)
	require.Equal(t, "CA00002", id)
}

func TestCreatorRepository_NextCreatorIDSeedsFromExisting(t *testing.T) {
	db := newTestDB(t)
	createCreatorTables(t, db)
	repo := NewCreatorRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newCreator("CA00042", "existing")))

	id, err := repo.NextCreatorID(ctx)
	require.NoError(t, err)
	require.Equal(t, "CA00043", id)
}

func TestCreatorRepository_NextCreatorIDNeverRepeats(t *testing.T) {
	db := newTestDB(t)
	createCreatorTables(t, db)
	repo := NewCreatorRepository(db)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 25; i++ {
		id, err := repo.NextCreatorID(ctx)
		require.NoError(t, err)
		require.False(t, seen[id], "duplicate creator id %s", id)
		seen[id] = true
	}
}

func TestCreatorRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createCreatorTables(t, db)
	repo := NewCreatorRepository(db)
	ctx := context.Background()
	id := uuid.New()

	_, err := repo.GetByID(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByUserID(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Update(ctx, &entities.Creator{ID: id, DisplayName: "x", Bio: null.String{}})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.UpdateStatus(ctx, id, entities.UserStatusActive)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
