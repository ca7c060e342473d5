// internal/handlers/dataset_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"vocaaid/internal/model"
	"vocaaid/internal/service"
	"vocaaid/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type DatasetHandler struct {
	service service.DatasetService
	logger  *slog.Logger
}

func NewDatasetHandler(s service.DatasetService, logger *slog.Logger) *DatasetHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DatasetHandler{service: s, logger: logger}
}

// validateStruct はリクエストDTOのバリデーションを行い、失敗時は日本語の
// 翻訳済みメッセージでレスポンスを書き込みます。falseを返したら処理中断。
func validateStruct(w http.ResponseWriter, logger *slog.Logger, req interface{}) bool {
	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.String("errors", validationErrors.Error()))
			firstErr := validationErrors[0]
			appErr := model.NewAppError(
				"VALIDATION_ERROR",
				firstErr.Translate(webutil.Trans),
				firstErr.Field(),
				model.ErrInvalidInput,
			)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return false
	}
	return true
}

// GetData はデータセット全体を返すハンドラ
func (h *DatasetHandler) GetData(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetData"))

	data, err := h.service.GetData(r.Context())
	if err != nil {
		logger.Error("Error loading dataset in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, data, logger)
}

// PostWord は新しい単語を追加するハンドラ
func (h *DatasetHandler) PostWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostWord"))

	var req model.PostWordRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !validateStruct(w, logger, req) {
		return
	}

	word, err := h.service.AddWord(r.Context(), &req)
	if err != nil {
		logger.Error("Error adding word in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if word == nil {
		// サービス契約上の黙認（トリム後に空）。バリデーション済みなので通常来ない
		appErr := model.NewAppError("VALIDATION_ERROR", "英単語と訳は必須項目です。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	logger.Info("Word added successfully", slog.String("word_id", word.ID))
	webutil.RespondWithJSON(w, http.StatusCreated, word, logger)
}

// PutWord は単語を置き換えるハンドラ
func (h *DatasetHandler) PutWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutWord"))

	wordID := chi.URLParam(r, "word_id")

	var req model.PutWordRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !validateStruct(w, logger, req) {
		return
	}

	word := model.Word{
		ID:        wordID,
		English:   req.English,
		Korean:    req.Korean,
		Korean2:   req.Korean2,
		FolderID:  req.FolderID,
		IsStarred: req.IsStarred,
	}
	updated, err := h.service.UpdateWord(r.Context(), word)
	if err != nil {
		logger.Error("Error updating word in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if updated == nil {
		webutil.HandleError(w, logger, model.ErrNotFound)
		return
	}

	logger.Info("Word updated successfully", slog.String("word_id", wordID))
	webutil.RespondWithJSON(w, http.StatusOK, updated, logger)
}

// DeleteWord は単語を削除するハンドラ。存在しないIDでも成功扱いです。
func (h *DatasetHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteWord"))

	wordID := chi.URLParam(r, "word_id")
	if err := h.service.DeleteWord(r.Context(), wordID); err != nil {
		logger.Error("Error deleting word in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word deleted", slog.String("word_id", wordID))
	w.WriteHeader(http.StatusNoContent)
}

// MoveWords は複数単語をまとめて別フォルダへ移すハンドラ
func (h *DatasetHandler) MoveWords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "MoveWords"))

	var req model.MoveWordsRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !validateStruct(w, logger, req) {
		return
	}

	if err := h.service.MoveWords(r.Context(), req.WordIDs, req.FolderID); err != nil {
		logger.Error("Error moving words in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Words moved", slog.Int("count", len(req.WordIDs)))
	w.WriteHeader(http.StatusNoContent)
}

// PostFolder は新しいフォルダを作成するハンドラ
func (h *DatasetHandler) PostFolder(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostFolder"))

	var req model.PostFolderRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !validateStruct(w, logger, req) {
		return
	}

	folder, err := h.service.AddFolder(r.Context(), req.Name)
	if err != nil {
		logger.Error("Error adding folder in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if folder == nil {
		appErr := model.NewAppError("VALIDATION_ERROR", "フォルダ名は必須項目です。", "name", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	logger.Info("Folder added successfully", slog.String("folder_id", folder.ID))
	webutil.RespondWithJSON(w, http.StatusCreated, folder, logger)
}

// DeleteFolder はフォルダを削除するハンドラ。破壊的操作なので
// クエリパラメータ confirm=true が無い場合は拒否します。
func (h *DatasetHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteFolder"))

	folderID := chi.URLParam(r, "folder_id")
	confirmed := r.URL.Query().Get("confirm") == "true"

	err := h.service.DeleteFolder(r.Context(), folderID, confirmed)
	if err != nil {
		if errors.Is(err, model.ErrConfirmationRequired) {
			appErr := model.NewAppError(
				"CONFIRMATION_REQUIRED",
				"フォルダを削除すると中の単語は未分類になります。confirm=true を付けて再実行してください。",
				"",
				model.ErrConfirmationRequired,
			)
			webutil.HandleError(w, logger, appErr)
			return
		}
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Folder not found", slog.String("folder_id", folderID))
		} else {
			logger.Error("Error deleting folder in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Folder deleted", slog.String("folder_id", folderID))
	w.WriteHeader(http.StatusNoContent)
}

// ImportData はデータセット全体を上書き取り込みするハンドラ
func (h *DatasetHandler) ImportData(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ImportData"))

	var req model.ImportRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	err := h.service.Import(r.Context(), req.Data, req.Confirm)
	if err != nil {
		if errors.Is(err, model.ErrConfirmationRequired) {
			appErr := model.NewAppError(
				"CONFIRMATION_REQUIRED",
				"現在の単語帳を上書きします。confirm を true にして再実行してください。",
				"confirm",
				model.ErrConfirmationRequired,
			)
			webutil.HandleError(w, logger, appErr)
			return
		}
		if errors.Is(err, model.ErrInvalidInput) {
			appErr := model.NewAppError("INVALID_DATA_STRUCTURE", "取り込みデータの形式が正しくありません。", "data", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		logger.Error("Error importing dataset in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Dataset imported")
	webutil.RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true}, logger)
}
