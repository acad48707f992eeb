package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Equipes-App/internal/domain/model"
	"Equipes-App/internal/domain/repository"
)

func TestMemoryTeamsRepository_GetAll(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTeamsRepository(model.SeedTeams())

	teams, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.SeedTeams(), teams)

	// 返り値を変更しても登録簿には影響しない
	teams[0].Name = "changed"
	again, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Equipe 1", again[0].Name)
}

func TestMemoryTeamsRepository_SeedIsCopied(t *testing.T) {
	seed := model.SeedTeams()
	repo := NewMemoryTeamsRepository(seed)

	seed[0].Name = "changed"

	team, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Equipe 1", team.Name)
}

func TestMemoryTeamsRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTeamsRepository(model.SeedTeams())

	team, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, model.Team{ID: 2, Name: "Equipe 2", Country: "Country 2"}, *team)

	_, err = repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, repository.ErrTeamNotFound)
}

func TestMemoryTeamsRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTeamsRepository(model.SeedTeams())

	created, err := repo.Create(ctx, model.Team{ID: 4, Name: "Equipe 4", Country: "Country 4"})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)

	teams, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 4)
	assert.Equal(t, *created, teams[3])
}

func TestMemoryTeamsRepository_DuplicateIDsUseFirstMatch(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTeamsRepository(model.SeedTeams())

	_, err := repo.Create(ctx, model.Team{ID: 1, Name: "Doublon", Country: "Ailleurs"})
	require.NoError(t, err)

	team, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Equipe 1", team.Name)

	updated, err := repo.Update(ctx, 1, "X", "Y")
	require.NoError(t, err)
	assert.Equal(t, "X", updated.Name)

	removed, err := repo.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model.Team{ID: 1, Name: "X", Country: "Y"}, *removed)

	// 削除後は重複していた二件目が見える
	team, err = repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Doublon", team.Name)
}

func TestMemoryTeamsRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTeamsRepository(model.SeedTeams())

	updated, err := repo.Update(ctx, 1, "X", "Y")
	require.NoError(t, err)
	assert.Equal(t, model.Team{ID: 1, Name: "X", Country: "Y"}, *updated)

	team, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, *updated, *team)

	_, err = repo.Update(ctx, 99, "X", "Y")
	assert.ErrorIs(t, err, repository.ErrTeamNotFound)
}

func TestMemoryTeamsRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTeamsRepository(model.SeedTeams())

	removed, err := repo.Delete(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, model.Team{ID: 2, Name: "Equipe 2", Country: "Country 2"}, *removed)

	teams, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, []int{1, 3}, []int{teams[0].ID, teams[1].ID})

	_, err = repo.Delete(ctx, 2)
	assert.ErrorIs(t, err, repository.ErrTeamNotFound)
}

func TestMemoryTeamsRepository_ConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTeamsRepository(nil)

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := repo.Create(ctx, model.Team{ID: n, Name: fmt.Sprintf("Equipe %d", n)})
			assert.NoError(t, err)
			_, err = repo.Update(ctx, n, "updated", "FR")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	teams, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, teams, workers)
	for _, team := range teams {
		assert.Equal(t, "updated", team.Name)
	}
}
