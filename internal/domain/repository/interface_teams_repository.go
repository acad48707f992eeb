package repository

import (
	"context"
	"errors"

	"Equipes-App/internal/domain/model"
)

// ErrTeamNotFound 指定したIDのチームが存在しない
var ErrTeamNotFound = errors.New("チームが見つかりません")

// TeamsRepository チーム登録簿へのアクセスを抽象化する
// IDが重複している場合、ID指定の操作は最初に一致したチームだけを対象にする
type TeamsRepository interface {
	GetAll(ctx context.Context) ([]model.Team, error)
	GetByID(ctx context.Context, id int) (*model.Team, error)
	Create(ctx context.Context, team model.Team) (*model.Team, error)
	Update(ctx context.Context, id int, name, country string) (*model.Team, error)
	Delete(ctx context.Context, id int) (*model.Team, error)
}
