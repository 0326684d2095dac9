package engineer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/engreg/engreg/internal/engineer"
)

// --- Create Tests ---

func TestMemoryRepository_CreateThenFind(t *testing.T) {
	repo := engineer.NewMemoryRepository()
	ctx := context.Background()

	created := repo.Create(ctx, "Pawa", []string{"java", "spring"})

	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Pawa", created.Name)
	assert.Equal(t, []string{"java", "spring"}, created.TechStack)

	found, ok := repo.FindByID(ctx, created.ID)
	require.True(t, ok)
	assert.Equal(t, created, found)
}

func TestMemoryRepository_CreateNilTechStack(t *testing.T) {
	repo := engineer.NewMemoryRepository()
	ctx := context.Background()

	created := repo.Create(ctx, "Miha", nil)

	require.NotNil(t, created.TechStack)
	assert.Empty(t, created.TechStack)

	found, ok := repo.FindByID(ctx, created.ID)
	require.True(t, ok)
	assert.NotNil(t, found.TechStack)
}

func TestMemoryRepository_IDsStrictlyIncrease(t *testing.T) {
	repo := engineer.NewMemoryRepository()
	ctx := context.Background()

	first := repo.Create(ctx, "Pawa", nil)
	second := repo.Create(ctx, "Miha", nil)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	// Ids are never reused, even after delete.
	repo.Delete(ctx, second.ID)
	third := repo.Create(ctx, "Anna", nil)
	assert.Equal(t, 3, third.ID)
}

func TestMemoryRepository_IDCounterSurvivesDeleteAll(t *testing.T) {
	repo := engineer.NewMemoryRepository()
	ctx := context.Background()

	repo.Create(ctx, "Pawa", nil)
	repo.Create(ctx, "Miha", nil)
	repo.DeleteAll(ctx)

	assert.Empty(t, repo.List(ctx))
	assert.Zero(t, repo.Count(ctx))

	next := repo.Create(ctx, "Anna", nil)
	assert.Equal(t, 3, next.ID)
}

func TestMemoryRepository_TechStackDefensiveCopyOnCreate(t *testing.T) {
	repo := engineer.NewMemoryRepository()
	ctx := context.Background()

	stack := []string{"java", "spring"}
	created := repo.Create(ctx, "Pawa", stack)

	stack[0] = "cobol"

	found, ok := repo.FindByID(ctx, created.ID)
	require.True(t, ok)
	assert.Equal(t, []string{"java", "spring"}, found.TechStack)
}

func TestMemoryRepository_TechStackDefensiveCopyOnRead(t *testing.T) {
	repo := engineer.NewMemoryRepository()
	ctx := context.Background()

	created := repo.Create(ctx, "Pawa", []string{"java", "spring"})

	found, ok := repo.FindByID(ctx, created.ID)
	require.True(t, ok)
	found.TechStack[0] = "cobol"

	again, ok := repo.FindByID(ctx, created.ID)
	require.True(t, ok)
	assert.Equal(t, []string{"java", "spring"}, again.TechStack)
}

// --- FindByID Tests ---

func TestMemoryRepository_FindByIDAbsent(t *testing.T) {
	repo := engineer.NewMemoryRepository()

	_, ok := repo.FindByID(context.Background(), 42)

	assert.False(t, ok)
}

// --- List Tests ---

func TestMemoryRepository_ListReturnsAll(t *testing.T) {
	repo := engineer.NewMemoryRepository()
	ctx := context.Background()

	first := repo.Create(ctx, "Pawa", []string{"java"})
	second := repo.Create(ctx, "Miha", []string{"kotlin"})

	// Order is map iteration order, so only set membership is asserted.
	assert.ElementsMatch(t, []engineer.Engineer{first, second}, repo.List(ctx))
}

func TestMemoryRepository_ListEmpty(t *testing.T) {
	repo := engineer.NewMemoryRepository()

	assert.Empty(t, repo.List(context.Background()))
}

// --- Update Tests ---

func TestMemoryRepository_UpdatePreservesID(t *testing.T) {
	repo := engineer.NewMemoryRepository()
	ctx := context.Background()

	created := repo.Create(ctx, "Pawa", []string{"java", "spring"})

	repo.Update(ctx, created.ID, "Miha", []string{"java", "kotlin", "spring"})

	found, ok := repo.FindByID(ctx, created.ID)
	require.True(t, ok)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Miha", found.Name)
	assert.Equal(t, []string{"java", "kotlin", "spring"}, found.TechStack)
}

func TestMemoryRepository_UpdateIsUpsert(t *testing.T) {
	// The repository primitive does not check existence; that guarantee
	// belongs to the command service.
	repo := engineer.NewMemoryRepository()
	ctx := context.Background()

	repo.Update(ctx, 7, "Anna", nil)

	found, ok := repo.FindByID(ctx, 7)
	require.True(t, ok)
	assert.Equal(t, 7, found.ID)
	assert.Equal(t, "Anna", found.Name)
}

// --- Delete Tests ---

func TestMemoryRepository_DeleteRemoves(t *testing.T) {
	repo := engineer.NewMemoryRepository()
	ctx := context.Background()

	created := repo.Create(ctx, "Pawa", nil)
	repo.Delete(ctx, created.ID)

	_, ok := repo.FindByID(ctx, created.ID)
	assert.False(t, ok)
}

func TestMemoryRepository_DeleteAbsentIsNoOp(t *testing.T) {
	repo := engineer.NewMemoryRepository()
	ctx := context.Background()

	created := repo.Create(ctx, "Pawa", nil)
	repo.Delete(ctx, -1)

	assert.Len(t, repo.List(ctx), 1)
	_, ok := repo.FindByID(ctx, created.ID)
	assert.True(t, ok)
}
