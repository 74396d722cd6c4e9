package sessions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velhaven/gearplan/internal/crafting"
	apperr "github.com/velhaven/gearplan/internal/errors"
	"github.com/velhaven/gearplan/internal/repositories/sessions"
	"github.com/velhaven/gearplan/internal/testutils"
	"github.com/velhaven/gearplan/internal/uuid"
)

func sampleSession(id string) *crafting.Session {
	return crafting.NewSession(id, testutils.SampleBuild(),
		testutils.SampleRecipeIndex(), uuid.NewSequentialGenerator("g"))
}

func TestInMemoryRepository_SetAndGet(t *testing.T) {
	repo := sessions.NewInMemoryRepository()
	ctx := context.Background()

	session := sampleSession("s1")
	require.NoError(t, repo.Set(ctx, session))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestInMemoryRepository_GetReturnsCopy(t *testing.T) {
	repo := sessions.NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, sampleSession("s1")))

	first, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	first.Groups[0].SelectedA = "Iron Shard"

	second, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, second.Groups[0].SelectedA)
}

func TestInMemoryRepository_SetReplaces(t *testing.T) {
	repo := sessions.NewInMemoryRepository()
	ctx := context.Background()

	session := sampleSession("s1")
	require.NoError(t, repo.Set(ctx, session))

	require.NoError(t, session.Split(session.Groups[0].ID, []int{1}, uuid.NewSequentialGenerator("sub")))
	require.NoError(t, repo.Set(ctx, session))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, got.Groups, 4)
}

func TestInMemoryRepository_Set_Validation(t *testing.T) {
	repo := sessions.NewInMemoryRepository()
	ctx := context.Background()

	err := repo.Set(ctx, nil)
	assert.True(t, apperr.IsInvalidArgument(err))

	err = repo.Set(ctx, &crafting.Session{})
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestInMemoryRepository_Get_NotFound(t *testing.T) {
	repo := sessions.NewInMemoryRepository()

	_, err := repo.Get(context.Background(), "missing")
	assert.True(t, apperr.IsNotFound(err))
}

func TestInMemoryRepository_Delete(t *testing.T) {
	repo := sessions.NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, sampleSession("s1")))
	require.NoError(t, repo.Delete(ctx, "s1"))

	_, err := repo.Get(ctx, "s1")
	assert.True(t, apperr.IsNotFound(err))

	err = repo.Delete(ctx, "s1")
	assert.True(t, apperr.IsNotFound(err))
}
