// internal/handlers/sync_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"vocaaid/internal/model"
	"vocaaid/internal/service"
	"vocaaid/internal/webutil"
)

// SyncHandler はローカル変更の自動同期を担うコーディネータへの操作窓口です。
type SyncHandler struct {
	service service.SyncService
	logger  *slog.Logger
}

func NewSyncHandler(s service.SyncService, logger *slog.Logger) *SyncHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SyncHandler{service: s, logger: logger}
}

// GetStatus は同期コーディネータの現在の状態を返すハンドラ
func (h *SyncHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SyncGetStatus"))
	webutil.RespondWithJSON(w, http.StatusOK, h.service.Status(), logger)
}

// Sync は手動同期を実行するハンドラ。オフライン時・未変更時は黙って成功します。
func (h *SyncHandler) Sync(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SyncManual"))

	if err := h.service.Sync(r.Context()); err != nil {
		logger.Error("Manual sync failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, h.service.Status(), logger)
}

// Refresh はミラーからローカルへ全件取り直すハンドラ
func (h *SyncHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SyncRefresh"))

	if err := h.service.Refresh(r.Context()); err != nil {
		logger.Error("Refresh from remote mirror failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Refreshed dataset from remote mirror")
	webutil.RespondWithJSON(w, http.StatusOK, h.service.Status(), logger)
}

// PutOnline は接続性の変化イベントを受け取るハンドラ。
// オンライン復帰時、未送出の変更があれば自動同期が予約されます。
func (h *SyncHandler) PutOnline(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SyncPutOnline"))

	var req model.PutOnlineRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !validateStruct(w, logger, req) {
		return
	}

	h.service.SetOnline(*req.IsOnline)
	logger.Info("Connectivity changed", slog.Bool("is_online", *req.IsOnline))
	webutil.RespondWithJSON(w, http.StatusOK, h.service.Status(), logger)
}
