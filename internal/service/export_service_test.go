// internal/service/export_service_test.go
package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"vocaaid/internal/config"
	"vocaaid/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_exportService_BuildExport(t *testing.T) {
	svc := NewExportService()

	data := &model.Dataset{
		Folders: []model.Folder{{ID: "f1", Name: "  <b>toeic</b>  "}},
		Words: []model.Word{
			{ID: "w1", English: "<script>apple</script>", Korean: " 사과 ", Korean2: "애플"},
		},
	}

	doc, filename := svc.BuildExport(data)

	// メタデータ
	assert.Equal(t, config.ExportVersion, doc.Version)
	assert.Equal(t, config.ExportSource, doc.Source)
	assert.WithinDuration(t, time.Now(), doc.ExportedAt, time.Second*5)

	// 山括弧は除去され、前後の空白はトリムされる
	require.Len(t, doc.Folders, 1)
	assert.Equal(t, "btoeic/b", doc.Folders[0].Name)
	require.Len(t, doc.Words, 1)
	assert.Equal(t, "scriptapple/script", doc.Words[0].English)
	assert.Equal(t, "사과", doc.Words[0].Korean)
	assert.Equal(t, "애플", doc.Words[0].Korean2)

	// ファイル名は当日日付入り
	assert.Equal(t, fmt.Sprintf("vocab_data_%s.json", time.Now().Format("2006-01-02")), filename)

	// 元データは変更されていない
	assert.Equal(t, "<script>apple</script>", data.Words[0].English)
}

func Test_exportService_エクスポートしたデータはそのまま取り込める(t *testing.T) {
	ctx := context.Background()
	exports := NewExportService()
	svc, _ := newTestDatasetService(t)

	folderID := "f1"
	original := &model.Dataset{
		Folders: []model.Folder{{ID: folderID, Name: "toeic"}},
		Words: []model.Word{
			{ID: "w1", English: "apple", Korean: "사과", Korean2: "애플", FolderID: &folderID, IsStarred: true},
			{ID: "w2", English: "banana", Korean: "바나나"},
		},
	}

	doc, _ := exports.BuildExport(original)

	// エクスポート文書のメタデータを除いた部分が取り込みの入力になる
	restored := &model.Dataset{Folders: doc.Folders, Words: doc.Words}
	require.NoError(t, svc.Import(ctx, restored, true))

	data, err := svc.GetData(ctx)
	require.NoError(t, err)
	assert.Equal(t, original.Folders, data.Folders)
	assert.Equal(t, original.Words, data.Words)
}

func Test_exportService_SanitizeForSync(t *testing.T) {
	svc := NewExportService()

	data := &model.Dataset{
		Folders: []model.Folder{{ID: "f1", Name: "  " + strings.Repeat("あ", maxFolderNameLen+5) + "  "}},
		Words: []model.Word{
			{ID: "w1", English: "  <keep>  ", Korean: strings.Repeat("가", maxWordTextLen+5)},
		},
	}

	out := svc.SanitizeForSync(data)

	// 同期用はトリムと長さ制限のみで、山括弧はそのまま残る
	assert.Equal(t, "<keep>", out.Words[0].English)
	assert.Len(t, []rune(out.Words[0].Korean), maxWordTextLen)
	assert.Len(t, []rune(out.Folders[0].Name), maxFolderNameLen)

	// 元データは変更されていない
	assert.Equal(t, "  <keep>  ", data.Words[0].English)
}

func Test_exportService_ValidateShape(t *testing.T) {
	svc := NewExportService()

	tests := []struct {
		name    string
		data    *model.Dataset
		wantErr bool
	}{
		{name: "正常系: 両方の配列がある", data: model.NewDataset(), wantErr: false},
		{name: "異常系: nil", data: nil, wantErr: true},
		{name: "異常系: foldersが無い", data: &model.Dataset{Words: []model.Word{}}, wantErr: true},
		{name: "異常系: wordsが無い", data: &model.Dataset{Folders: []model.Folder{}}, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.ValidateShape(tc.data)
			if tc.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
