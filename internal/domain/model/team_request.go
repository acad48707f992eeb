package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// CreateTeamRequest POST /equipes のリクエストボディ
// フィールドの検証は行わず、欠けている値や変換できない値はゼロ値になる
type CreateTeamRequest struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// UpdateTeamRequest PUT /equipes/:id のリクエストボディ
type UpdateTeamRequest struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// ToTeam リクエストからTeamを組み立てる
func (r *CreateTeamRequest) ToTeam() Team {
	return Team{
		ID:      r.ID,
		Name:    r.Name,
		Country: r.Country,
	}
}

// UnmarshalJSON 型が合わないフィールドもエラーにせず変換して取り込む
func (r *CreateTeamRequest) UnmarshalJSON(data []byte) error {
	fields, err := decodeFields(data)
	if err != nil {
		return err
	}

	*r = CreateTeamRequest{
		ID:      coerceInt(fields["id"]),
		Name:    coerceString(fields["name"]),
		Country: coerceString(fields["country"]),
	}
	return nil
}

// UnmarshalJSON 型が合わないフィールドもエラーにせず変換して取り込む
func (r *UpdateTeamRequest) UnmarshalJSON(data []byte) error {
	fields, err := decodeFields(data)
	if err != nil {
		return err
	}

	*r = UpdateTeamRequest{
		Name:    coerceString(fields["name"]),
		Country: coerceString(fields["country"]),
	}
	return nil
}

// decodeFields オブジェクトをキーごとの生JSONに分解する
// 配列とnullはフィールドを持たない空のボディとして扱い、それ以外の値はエラーになる
func decodeFields(data []byte) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if (len(trimmed) > 0 && trimmed[0] == '[') || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// coerceInt 整数値と、整数を表す数値文字列だけを受け付ける。それ以外は0
func coerceInt(raw json.RawMessage) int {
	var s string
	switch v := decodeScalar(raw).(type) {
	case json.Number:
		s = v.String()
	case string:
		s = strings.TrimSpace(v)
	default:
		return 0
	}

	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f >= math.MaxInt || f < math.MinInt {
		return 0
	}
	return int(f)
}

// coerceString 文字列はそのまま、数値と真偽値は文字列表現にする。null・オブジェクト・配列は空文字
func coerceString(raw json.RawMessage) string {
	switch v := decodeScalar(raw).(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func decodeScalar(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	return v
}
