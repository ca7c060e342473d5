//go:generate mockery --name ExportService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"fmt"
	"strings"
	"time"

	"vocaaid/internal/config"
	"vocaaid/internal/model"
)

// ExportService はダウンロード用JSONの生成と、同期前のデータ整形を行います。
type ExportService interface {
	// BuildExport はサニタイズ済みのエクスポートドキュメントと
	// 推奨ファイル名（当日日付入り）を返します。
	BuildExport(data *model.Dataset) (*model.ExportDocument, string)
	// SanitizeForSync は同期用にトリムと長さ制限だけを適用します。
	SanitizeForSync(data *model.Dataset) *model.Dataset
	// ValidateShape は取り込み・送信データの構造チェックです
	// （folders / words が配列として存在すること）。
	ValidateShape(data *model.Dataset) error
}

type exportService struct{}

func NewExportService() ExportService {
	return &exportService{}
}

// sanitizeText はXSS対策として山括弧を除去し、トリムして長さを制限します。
func sanitizeText(s string, limit int) string {
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	return truncateRunes(strings.TrimSpace(s), limit)
}

func (s *exportService) BuildExport(data *model.Dataset) (*model.ExportDocument, string) {
	doc := &model.ExportDocument{
		Folders:    make([]model.Folder, 0, len(data.Folders)),
		Words:      make([]model.Word, 0, len(data.Words)),
		ExportedAt: time.Now(),
		Version:    config.ExportVersion,
		Source:     config.ExportSource,
	}
	for _, f := range data.Folders {
		f.Name = sanitizeText(f.Name, maxFolderNameLen)
		doc.Folders = append(doc.Folders, f)
	}
	for _, w := range data.Words {
		w.English = sanitizeText(w.English, maxWordTextLen)
		w.Korean = sanitizeText(w.Korean, maxWordTextLen)
		if w.Korean2 != "" {
			w.Korean2 = sanitizeText(w.Korean2, maxWordTextLen)
		}
		doc.Words = append(doc.Words, w)
	}

	filename := fmt.Sprintf("vocab_data_%s.json", time.Now().Format("2006-01-02"))
	return doc, filename
}

func (s *exportService) SanitizeForSync(data *model.Dataset) *model.Dataset {
	out := data.Clone()
	for i := range out.Folders {
		out.Folders[i].Name = truncateRunes(strings.TrimSpace(out.Folders[i].Name), maxFolderNameLen)
	}
	for i := range out.Words {
		out.Words[i].English = truncateRunes(strings.TrimSpace(out.Words[i].English), maxWordTextLen)
		out.Words[i].Korean = truncateRunes(strings.TrimSpace(out.Words[i].Korean), maxWordTextLen)
		if out.Words[i].Korean2 != "" {
			out.Words[i].Korean2 = truncateRunes(strings.TrimSpace(out.Words[i].Korean2), maxWordTextLen)
		}
	}
	return out
}

func (s *exportService) ValidateShape(data *model.Dataset) error {
	if data == nil || data.Folders == nil || data.Words == nil {
		return model.ErrInvalidInput
	}
	return nil
}
