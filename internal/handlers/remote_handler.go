// internal/handlers/remote_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"vocaaid/internal/model"
	"vocaaid/internal/remote"
	"vocaaid/internal/service"
	"vocaaid/internal/webutil"
)

// RemoteHandler はリモートミラーを直接操作するAPI群です。
// ローカルの単語帳には触れず、ミラー側のレコードだけを読み書きします。
type RemoteHandler struct {
	client  remote.Client
	exports service.ExportService
	logger  *slog.Logger
}

func NewRemoteHandler(client remote.Client, exports service.ExportService, logger *slog.Logger) *RemoteHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RemoteHandler{client: client, exports: exports, logger: logger}
}

// SyncAll はリクエストボディのデータセットを無害化してミラーへ一括送出するハンドラ
func (h *RemoteHandler) SyncAll(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "RemoteSyncAll"))

	var data model.Dataset
	if err := webutil.DecodeJSONBody(r, &data); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if err := h.exports.ValidateShape(&data); err != nil {
		appErr := model.NewAppError("INVALID_DATA_STRUCTURE", "同期データの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	sanitized := h.exports.SanitizeForSync(&data)
	if err := h.client.PushAll(r.Context(), sanitized); err != nil {
		logger.Error("Failed to push dataset to remote mirror", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Dataset pushed to remote mirror", slog.Int("words", len(sanitized.Words)))
	webutil.RespondWithJSON(w, http.StatusOK, model.SyncResponse{
		Success:  true,
		Message:  "同期が完了しました。",
		SyncedAt: time.Now(),
	}, logger)
}

// GetWords はミラー上の全単語を返すハンドラ
func (h *RemoteHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "RemoteGetWords"))

	words, err := h.client.FetchAll(r.Context())
	if err != nil {
		logger.Error("Failed to fetch words from remote mirror", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"words":   words,
	}, logger)
}

// PostWord はミラーに単語レコードを1件作成するハンドラ
func (h *RemoteHandler) PostWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "RemotePostWord"))

	var word model.Word
	if err := webutil.DecodeJSONBody(r, &word); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	remoteID, err := h.client.Create(r.Context(), word)
	if err != nil {
		logger.Error("Failed to create word on remote mirror", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word created on remote mirror", slog.String("remote_id", remoteID))
	webutil.RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"success":      true,
		"notionPageId": remoteID,
	}, logger)
}

// PutWord はミラー上の既存レコードを更新するハンドラ。notionPageId が必須です。
func (h *RemoteHandler) PutWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "RemotePutWord"))

	var word model.Word
	if err := webutil.DecodeJSONBody(r, &word); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.client.Update(r.Context(), word); err != nil {
		logger.Error("Failed to update word on remote mirror", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"success": true}, logger)
}

// DeleteWord はミラー上のレコードをアーカイブするハンドラ。
// クエリパラメータ remote_id が必須です。
func (h *RemoteHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "RemoteDeleteWord"))

	remoteID := r.URL.Query().Get("remote_id")
	if remoteID == "" {
		appErr := model.NewAppError("MISSING_REMOTE_ID", "remote_id パラメータは必須です。", "remote_id", model.ErrMissingRemoteID)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.client.Delete(r.Context(), remoteID); err != nil {
		logger.Error("Failed to delete word on remote mirror", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"success": true}, logger)
}
