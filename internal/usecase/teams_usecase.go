package usecase

import (
	"context"
	"fmt"

	"Equipes-App/internal/domain/model"
	"Equipes-App/internal/domain/repository"
)

type TeamsUseCase interface {
	// ListTeams は登録簿の全チームを挿入順で返す
	ListTeams(ctx context.Context) ([]model.Team, error)

	// GetTeam はパスパラメータのIDに一致する最初のチームを返す
	GetTeam(ctx context.Context, rawID string) (*model.Team, error)

	// CreateTeam はリクエストの値をそのまま末尾に追加する（検証・重複チェックなし）
	CreateTeam(ctx context.Context, req *model.CreateTeamRequest) (*model.Team, error)

	// UpdateTeam は一致した最初のチームの名前と国を上書きする
	UpdateTeam(ctx context.Context, rawID string, req *model.UpdateTeamRequest) (*model.Team, error)

	// DeleteTeam は一致した最初のチームを削除して返す
	DeleteTeam(ctx context.Context, rawID string) (*model.Team, error)
}

// teamsUseCaseImpl はTeamsUseCaseの実装
type teamsUseCaseImpl struct {
	teamsRepo repository.TeamsRepository
}

// NewTeamsUseCase は新しいTeamsUseCaseインスタンスを作成
func NewTeamsUseCase(teamsRepo repository.TeamsRepository) TeamsUseCase {
	return &teamsUseCaseImpl{
		teamsRepo: teamsRepo,
	}
}

func (u *teamsUseCaseImpl) ListTeams(ctx context.Context) ([]model.Team, error) {
	teams, err := u.teamsRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("チーム一覧の取得に失敗: %w", err)
	}
	return teams, nil
}

func (u *teamsUseCaseImpl) GetTeam(ctx context.Context, rawID string) (*model.Team, error) {
	id, ok := model.ParseTeamID(rawID)
	if !ok {
		return nil, notFound(rawID)
	}

	team, err := u.teamsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("チームの取得に失敗 (id=%d): %w", id, err)
	}
	return team, nil
}

func (u *teamsUseCaseImpl) CreateTeam(ctx context.Context, req *model.CreateTeamRequest) (*model.Team, error) {
	team, err := u.teamsRepo.Create(ctx, req.ToTeam())
	if err != nil {
		return nil, fmt.Errorf("チームの作成に失敗: %w", err)
	}
	return team, nil
}

func (u *teamsUseCaseImpl) UpdateTeam(ctx context.Context, rawID string, req *model.UpdateTeamRequest) (*model.Team, error) {
	id, ok := model.ParseTeamID(rawID)
	if !ok {
		return nil, notFound(rawID)
	}

	team, err := u.teamsRepo.Update(ctx, id, req.Name, req.Country)
	if err != nil {
		return nil, fmt.Errorf("チームの更新に失敗 (id=%d): %w", id, err)
	}
	return team, nil
}

func (u *teamsUseCaseImpl) DeleteTeam(ctx context.Context, rawID string) (*model.Team, error) {
	id, ok := model.ParseTeamID(rawID)
	if !ok {
		return nil, notFound(rawID)
	}

	team, err := u.teamsRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("チームの削除に失敗 (id=%d): %w", id, err)
	}
	return team, nil
}

// notFound 数値として解釈できないIDはどのチームにも一致しない
func notFound(rawID string) error {
	return fmt.Errorf("数値でないID %q: %w", rawID, repository.ErrTeamNotFound)
}
