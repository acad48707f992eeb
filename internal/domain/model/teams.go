package model

// Team 登録簿に保持されるチーム
type Team struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// ErrorResponse エラー時のレスポンス
type ErrorResponse struct {
	Error string `json:"error"`
}

const (
	// MessageSuccess ヘルスチェック用の固定メッセージ
	MessageSuccess = "La requete est terminée avec succès"
	// MessageTeamNotFound 該当チームがない場合のエラーメッセージ
	MessageTeamNotFound = "Equipe introuvable"
)

// SeedTeams 起動時に登録簿へ投入する初期データ
func SeedTeams() []Team {
	return []Team{
		{ID: 1, Name: "Equipe 1", Country: "Country 1"},
		{ID: 2, Name: "Equipe 2", Country: "Country 2"},
		{ID: 3, Name: "Equipe 3", Country: "Country 3"},
	}
}
