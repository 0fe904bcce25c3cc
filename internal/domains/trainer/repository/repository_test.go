package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kidstrainer/infras/database/databasetest"
	"kidstrainer/infras/otel/mocks"
	"kidstrainer/internal/domains/trainer/model"
	"kidstrainer/internal/domains/trainer/repository"
	"kidstrainer/shared"
	gDto "kidstrainer/shared/dto"
)

func TestTrainerRepository(t *testing.T) {
	conn, _ := databasetest.New(t)
	handle := databasetest.Acquire(t, conn)
	repo := repository.New(mocks.NewOtel())
	ctx := context.Background()

	jane := model.Trainer{
		Name:        "Jane Doe",
		Sport:       "Tennis",
		Credentials: "USPTA",
		Bio:         "Ten years coaching juniors",
		Price:       30,
		Email:       "jane@example.com",
		Phone:       "555-0100",
	}

	firstID, err := repo.Insert(ctx, handle, jane)
	require.NoError(t, err)
	assert.Positive(t, firstID)

	secondID, err := repo.Insert(ctx, handle, jane)
	require.NoError(t, err)
	assert.NotEqual(t, firstID, secondID, "duplicate profiles get their own row")

	t.Run("get existing", func(t *testing.T) {
		got, found, err := repo.Get(ctx, handle, shared.FilterByID(firstID, model.FieldID, model.TableName))
		require.NoError(t, err)
		require.True(t, found)

		jane.ID = firstID
		assert.Equal(t, jane, got)
	})

	t.Run("get missing", func(t *testing.T) {
		got, found, err := repo.Get(ctx, handle, shared.FilterByID(int64(9999), model.FieldID, model.TableName))
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, model.Trainer{}, got)
	})

	t.Run("get all", func(t *testing.T) {
		all, err := repo.GetAll(ctx, handle, gDto.FilterGroup{})
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("get all with filter", func(t *testing.T) {
		matched, err := repo.GetAll(ctx, handle, gDto.FilterGroup{
			Filters: []any{gDto.Filter{
				Field:    model.FieldName,
				Table:    model.TableName,
				Operator: gDto.FilterOperatorEq,
				Value:    "Jane Doe",
			}},
		})
		require.NoError(t, err)
		assert.Len(t, matched, 2)
	})
}

func TestTrainerRepository_EmptyStore(t *testing.T) {
	conn, _ := databasetest.New(t)
	handle := databasetest.Acquire(t, conn)
	repo := repository.New(mocks.NewOtel())

	all, err := repo.GetAll(context.Background(), handle, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}
