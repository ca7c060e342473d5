// internal/handlers/export_handler.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"vocaaid/internal/service"
	"vocaaid/internal/webutil"
)

type ExportHandler struct {
	datasets service.DatasetService
	exports  service.ExportService
	logger   *slog.Logger
}

func NewExportHandler(datasets service.DatasetService, exports service.ExportService, logger *slog.Logger) *ExportHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportHandler{datasets: datasets, exports: exports, logger: logger}
}

// Export は単語帳全体をバックアップ用JSONとしてダウンロードさせるハンドラ。
// ファイル名は vocab_data_YYYY-MM-DD.json 形式です。
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Export"))

	data, err := h.datasets.GetData(r.Context())
	if err != nil {
		logger.Error("Error loading dataset in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	doc, filename := h.exports.BuildExport(data)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	logger.Info("Dataset exported", slog.String("filename", filename), slog.Int("words", len(doc.Words)))
	webutil.RespondWithJSON(w, http.StatusOK, doc, logger)
}
