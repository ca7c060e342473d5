// internal/handlers/quiz_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"vocaaid/internal/model"
	"vocaaid/internal/service"
	"vocaaid/internal/webutil"
)

type QuizHandler struct {
	service service.QuizService
	logger  *slog.Logger
}

func NewQuizHandler(s service.QuizService, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizHandler{service: s, logger: logger}
}

// GetState は現在のクイズセッション状態を返すハンドラ
func (h *QuizHandler) GetState(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "QuizGetState"))
	webutil.RespondWithJSON(w, http.StatusOK, h.service.State(r.Context()), logger)
}

// Start は選択条件に合う単語をシャッフルしてクイズセッションを開始するハンドラ
func (h *QuizHandler) Start(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "QuizStart"))

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
		logger.Warn("Failed to start quiz session", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Quiz session started", slog.Int("total", state.Total))
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}

// SubmitAnswer は現在の問題への回答を採点するハンドラ。
// 空白のみの回答はエラーになります。
func (h *QuizHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "QuizSubmitAnswer"))

	var req model.SubmitAnswerRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	state, err := h.service.Submit(r.Context(), req.Answer)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}

// Advance は採点済みの問題から次の問題へ進むハンドラ
func (h *QuizHandler) Advance(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "QuizAdvance"))

	state, err := h.service.Advance(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}

// ToggleStar はクイズ中の単語の別印を切り替え、単語帳と結果一覧にも反映するハンドラ
func (h *QuizHandler) ToggleStar(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "QuizToggleStar"))

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
func (h *QuizHandler) Reset(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "QuizReset"))
	webutil.RespondWithJSON(w, http.StatusOK, h.service.Reset(r.Context()), logger)
}

// Retry は直前の選択条件で新しい並び順のクイズを始めるハンドラ
func (h *QuizHandler) Retry(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "QuizRetry"))

	state, err := h.service.Retry(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}

// GetResults は終了画面用の正誤別結果一覧を返すハンドラ
func (h *QuizHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "QuizGetResults"))
	webutil.RespondWithJSON(w, http.StatusOK, h.service.Results(r.Context()), logger)
}
