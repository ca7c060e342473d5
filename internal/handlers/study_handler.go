// internal/handlers/study_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"vocaaid/internal/model"
	"vocaaid/internal/service"
	"vocaaid/internal/webutil"
)

type StudyHandler struct {
	service service.StudyService
	logger  *slog.Logger
}

func NewStudyHandler(s service.StudyService, logger *slog.Logger) *StudyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudyHandler{service: s, logger: logger}
}

// GetState は現在の学習セッション状態を返すハンドラ
func (h *StudyHandler) GetState(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StudyGetState"))
	webutil.RespondWithJSON(w, http.StatusOK, h.service.State(r.Context()), logger)
}

// Start は選択条件に合う単語をシャッフルして学習セッションを開始するハンドラ
func (h *StudyHandler) Start(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StudyStart"))

	var req model.StartSessionRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !validateStruct(w, logger, req) {
		return
	}

	state, err := h.service.Start(r.Context(), req.Selection)
	if err != nil {
		logger.Warn("Failed to start study session", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Study session started", slog.Int("total", state.Total))
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}

// Reveal は現在のカードの答え面を開くハンドラ。既に開いていれば何もしません。
func (h *StudyHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StudyReveal"))

	state, err := h.service.Reveal(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}

// Advance は答え面を確認済みのカードから次のカードへ進むハンドラ
func (h *StudyHandler) Advance(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StudyAdvance"))

	state, err := h.service.Advance(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}

// Flip は「開く→進む」を1操作にまとめたハンドラ。セッション外では何もしません。
func (h *StudyHandler) Flip(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StudyFlip"))

	state, err := h.service.Flip(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}

// ToggleStar はセッション中の単語の別印を切り替え、単語帳にも反映するハンドラ
func (h *StudyHandler) ToggleStar(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StudyToggleStar"))

	var req model.ToggleStarRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !validateStruct(w, logger, req) {
		return
	}

	state, err := h.service.ToggleStar(r.Context(), req.WordID)
	if err != nil {
		logger.Warn("Failed to toggle star", slog.String("word_id", req.WordID), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}

// Reset はセッションを初期状態へ戻すハンドラ
func (h *StudyHandler) Reset(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StudyReset"))
	webutil.RespondWithJSON(w, http.StatusOK, h.service.Reset(r.Context()), logger)
}

// Retry は直前の選択条件で新しい並び順のセッションを始めるハンドラ
func (h *StudyHandler) Retry(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StudyRetry"))

	state, err := h.service.Retry(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}
