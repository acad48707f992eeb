package handler

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"Equipes-App/internal/domain/model"
	"Equipes-App/internal/domain/repository"
	"Equipes-App/internal/usecase"
)

// TeamsHandler はチーム登録簿APIのハンドラー
type TeamsHandler struct {
	teamsUseCase usecase.TeamsUseCase
}

// NewTeamsHandler は新しいTeamsHandlerインスタンスを作成
func NewTeamsHandler(teamsUseCase usecase.TeamsUseCase) *TeamsHandler {
	return &TeamsHandler{
		teamsUseCase: teamsUseCase,
	}
}

// HealthCheck GET /equipes/success - 登録簿の状態に関係なく常に200を返す
func (h *TeamsHandler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, model.MessageSuccess)
}

// GetTeams GET /equipes - 全チームを挿入順で返す
func (h *TeamsHandler) GetTeams(c *gin.Context) {
	teams, err := h.teamsUseCase.ListTeams(c.Request.Context())
	if err != nil {
		h.respondError(c, "GetTeams", err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeam GET /equipes/:id - IDに一致する最初のチームを返す
func (h *TeamsHandler) GetTeam(c *gin.Context) {
	team, err := h.teamsUseCase.GetTeam(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "GetTeam", err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// CreateTeam POST /equipes - ボディの値をそのまま登録簿の末尾に追加する
func (h *TeamsHandler) CreateTeam(c *gin.Context) {
	var req model.CreateTeamRequest
	if !bindLenientJSON(c, &req) {
		return
	}

	team, err := h.teamsUseCase.CreateTeam(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, "CreateTeam", err)
		return
	}

	log.Printf("➕ CreateTeam [%s]: id=%d name=%q country=%q", RequestIDFrom(c), team.ID, team.Name, team.Country)
	c.JSON(http.StatusCreated, team)
}

// UpdateTeam PUT /equipes/:id - 名前と国を上書きする（IDは変わらない）
func (h *TeamsHandler) UpdateTeam(c *gin.Context) {
	var req model.UpdateTeamRequest
	if !bindLenientJSON(c, &req) {
		return
	}

	team, err := h.teamsUseCase.UpdateTeam(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respondError(c, "UpdateTeam", err)
		return
	}

	log.Printf("✏️ UpdateTeam [%s]: id=%d name=%q country=%q", RequestIDFrom(c), team.ID, team.Name, team.Country)
	c.JSON(http.StatusOK, team)
}

// DeleteTeam DELETE /equipes/:id - 最初に一致したチームを削除し、そのチームを返す
func (h *TeamsHandler) DeleteTeam(c *gin.Context) {
	team, err := h.teamsUseCase.DeleteTeam(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "DeleteTeam", err)
		return
	}

	log.Printf("🗑️ DeleteTeam [%s]: id=%d", RequestIDFrom(c), team.ID)
	c.JSON(http.StatusOK, team)
}

// bindLenientJSON はボディをデコードする。空のボディやContent-TypeがJSONでないボディは
// 読まずに全フィールドがゼロ値のリクエストとして扱い、JSONとして壊れている場合だけ400を返す
func bindLenientJSON(c *gin.Context, obj any) bool {
	if !strings.EqualFold(c.ContentType(), binding.MIMEJSON) {
		return true
	}

	err := c.ShouldBindJSON(obj)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	log.Printf("❌ [%s] Invalid JSON request: %v", RequestIDFrom(c), err)
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "invalid_request",
		"message": "Invalid JSON format: " + err.Error(),
	})
	return false
}

func (h *TeamsHandler) respondError(c *gin.Context, op string, err error) {
	if errors.Is(err, repository.ErrTeamNotFound) {
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: model.MessageTeamNotFound})
		return
	}

	log.Printf("❌ %s [%s]: %v", op, RequestIDFrom(c), err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "internal_error",
		"message": err.Error(),
	})
}
