package repository

import (
	"context"
	"sync"

	"Equipes-App/internal/domain/model"
	"Equipes-App/internal/domain/repository"
)

// MemoryTeamsRepository プロセス内メモリにチームを保持するリポジトリ
// 挿入順を保ち、IDの一意性は検証しない
type MemoryTeamsRepository struct {
	mu    sync.RWMutex
	teams []model.Team
}

// NewMemoryTeamsRepository 初期データを複製して新しいリポジトリを作成
func NewMemoryTeamsRepository(seed []model.Team) *MemoryTeamsRepository {
	teams := make([]model.Team, len(seed))
	copy(teams, seed)
	return &MemoryTeamsRepository{teams: teams}
}

// GetAll 全チームを挿入順で取得
func (r *MemoryTeamsRepository) GetAll(ctx context.Context) ([]model.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := make([]model.Team, len(r.teams))
	copy(teams, r.teams)
	return teams, nil
}

// GetByID IDが一致する最初のチームを取得
func (r *MemoryTeamsRepository) GetByID(ctx context.Context, id int) (*model.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, repository.ErrTeamNotFound
	}
	team := r.teams[i]
	return &team, nil
}

// Create 末尾にチームを追加
func (r *MemoryTeamsRepository) Create(ctx context.Context, team model.Team) (*model.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.teams = append(r.teams, team)
	return &team, nil
}

// Update 最初に一致したチームの名前と国を上書きする（IDは変更しない）
func (r *MemoryTeamsRepository) Update(ctx context.Context, id int, name, country string) (*model.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, repository.ErrTeamNotFound
	}
	r.teams[i].Name = name
	r.teams[i].Country = country

	team := r.teams[i]
	return &team, nil
}

// Delete 最初に一致したチームを一件だけ削除し、削除したチームを返す
func (r *MemoryTeamsRepository) Delete(ctx context.Context, id int) (*model.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, repository.ErrTeamNotFound
	}
	removed := r.teams[i]
	r.teams = append(r.teams[:i], r.teams[i+1:]...)
	return &removed, nil
}

// indexOf 呼び出し側でロックを保持していること
func (r *MemoryTeamsRepository) indexOf(id int) int {
	for i, team := range r.teams {
		if team.ID == id {
			return i
		}
	}
	return -1
}
