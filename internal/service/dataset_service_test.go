// internal/service/dataset_service_test.go
package service

import (
	"context"
	"strings"
	"testing"

	"vocaaid/internal/model"
	"vocaaid/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 ---

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to connect database for testing")
	require.NoError(t, db.AutoMigrate(&repository.StorageEntry{}))
	return db
}

// spyNotifier は MarkDirty の呼び出し回数を記録するだけの通知先です。
type spyNotifier struct {
	calls int
}

func (s *spyNotifier) MarkDirty() { s.calls++ }

func newTestDatasetService(t *testing.T) (DatasetService, *spyNotifier) {
	t.Helper()
	db := setupTestDB(t)
	notifier := &spyNotifier{}
	return NewDatasetService(db, repository.NewGormDatasetRepository(), notifier), notifier
}

func strPtr(s string) *string { return &s }

// --- Test AddWord ---

func Test_datasetService_AddWord(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		req        *model.PostWordRequest
		wantWord   bool
		wantNotify int
	}{
		{
			name:       "正常系: 単語の追加成功",
			req:        &model.PostWordRequest{English: "apple", Korean: "사과"},
			wantWord:   true,
			wantNotify: 1,
		},
		{
			name:       "正常系: 前後の空白はトリムされる",
			req:        &model.PostWordRequest{English: "  banana  ", Korean: " 바나나 "},
			wantWord:   true,
			wantNotify: 1,
		},
		{
			name:       "異常系: 英単語が空なら黙って無視",
			req:        &model.PostWordRequest{English: "   ", Korean: "사과"},
			wantWord:   false,
			wantNotify: 0,
		},
		{
			name:       "異常系: 訳が空なら黙って無視",
			req:        &model.PostWordRequest{English: "apple", Korean: ""},
			wantWord:   false,
			wantNotify: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, notifier := newTestDatasetService(t)

			word, err := svc.AddWord(ctx, tc.req)
			assert.NoError(t, err)

			if tc.wantWord {
				require.NotNil(t, word)
				assert.NotEmpty(t, word.ID)
				assert.Equal(t, strings.TrimSpace(tc.req.English), word.English)
				assert.Equal(t, strings.TrimSpace(tc.req.Korean), word.Korean)

				data, err := svc.GetData(ctx)
				require.NoError(t, err)
				require.Len(t, data.Words, 1)
				assert.Equal(t, word.ID, data.Words[0].ID)
			} else {
				assert.Nil(t, word)
				data, err := svc.GetData(ctx)
				require.NoError(t, err)
				assert.Empty(t, data.Words)
			}
			assert.Equal(t, tc.wantNotify, notifier.calls)
		})
	}
}

func Test_datasetService_AddWord_新しい単語が先頭に入る(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestDatasetService(t)

	first, err := svc.AddWord(ctx, &model.PostWordRequest{English: "first", Korean: "하나"})
	require.NoError(t, err)
	second, err := svc.AddWord(ctx, &model.PostWordRequest{English: "second", Korean: "둘"})
	require.NoError(t, err)

	data, err := svc.GetData(ctx)
	require.NoError(t, err)
	require.Len(t, data.Words, 2)
	assert.Equal(t, second.ID, data.Words[0].ID)
	assert.Equal(t, first.ID, data.Words[1].ID)
}

func Test_datasetService_AddWord_長すぎるテキストは切り詰められる(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestDatasetService(t)

	long := strings.Repeat("a", maxWordTextLen+100)
	word, err := svc.AddWord(ctx, &model.PostWordRequest{English: long, Korean: "뜻"})
	require.NoError(t, err)
	require.NotNil(t, word)
	assert.Len(t, []rune(word.English), maxWordTextLen)
}

// --- Test UpdateWord / DeleteWord ---

func Test_datasetService_UpdateWord(t *testing.T) {
	ctx := context.Background()
	svc, notifier := newTestDatasetService(t)

	word, err := svc.AddWord(ctx, &model.PostWordRequest{English: "apple", Korean: "사과"})
	require.NoError(t, err)
	notifier.calls = 0

	tests := []struct {
		name        string
		word        model.Word
		wantUpdated bool
	}{
		{
			name:        "正常系: 既存の単語を置き換え",
			word:        model.Word{ID: word.ID, English: "apple", Korean: "사과", Korean2: "애플", IsStarred: true},
			wantUpdated: true,
		},
		{
			name:        "異常系: 存在しないIDは何もしない",
			word:        model.Word{ID: "no-such-id", English: "x", Korean: "y"},
			wantUpdated: false,
		},
		{
			name:        "異常系: 必須フィールドが空なら永続化しない",
			word:        model.Word{ID: word.ID, English: "", Korean: "사과"},
			wantUpdated: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			updated, err := svc.UpdateWord(ctx, tc.word)
			assert.NoError(t, err)
			if tc.wantUpdated {
				require.NotNil(t, updated)
				assert.Equal(t, tc.word.Korean2, updated.Korean2)
				assert.Equal(t, tc.word.IsStarred, updated.IsStarred)
			} else {
				assert.Nil(t, updated)
			}
		})
	}
}

func Test_datasetService_UpdateWord_追加時と同じ正規化が適用される(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestDatasetService(t)

	word, err := svc.AddWord(ctx, &model.PostWordRequest{English: "apple", Korean: "사과"})
	require.NoError(t, err)

	long := strings.Repeat("a", maxWordTextLen+25)
	updated, err := svc.UpdateWord(ctx, model.Word{
		ID:      word.ID,
		English: "  " + long + "  ",
		Korean:  " 사과 ",
		Korean2: " 애플 ",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	// 更新でもトリムと長さ制限が効く
	assert.Len(t, []rune(updated.English), maxWordTextLen)
	assert.Equal(t, "사과", updated.Korean)
	assert.Equal(t, "애플", updated.Korean2)

	data, err := svc.GetData(ctx)
	require.NoError(t, err)
	require.Len(t, data.Words, 1)
	assert.Equal(t, updated.English, data.Words[0].English)
	assert.Equal(t, "애플", data.Words[0].Korean2)
}

func Test_datasetService_DeleteWord(t *testing.T) {
	ctx := context.Background()
	svc, notifier := newTestDatasetService(t)

	word, err := svc.AddWord(ctx, &model.PostWordRequest{English: "apple", Korean: "사과"})
	require.NoError(t, err)
	notifier.calls = 0

	// 正常系: 削除される
	require.NoError(t, svc.DeleteWord(ctx, word.ID))
	data, err := svc.GetData(ctx)
	require.NoError(t, err)
	assert.Empty(t, data.Words)
	assert.Equal(t, 1, notifier.calls)

	// 異常系: 存在しないIDは成功扱いで、通知も増えない
	require.NoError(t, svc.DeleteWord(ctx, "no-such-id"))
	assert.Equal(t, 1, notifier.calls)
}

// --- Test MoveWords ---

func Test_datasetService_MoveWords(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestDatasetService(t)

	folder, err := svc.AddFolder(ctx, "toeic")
	require.NoError(t, err)
	w1, err := svc.AddWord(ctx, &model.PostWordRequest{English: "one", Korean: "하나"})
	require.NoError(t, err)
	w2, err := svc.AddWord(ctx, &model.PostWordRequest{English: "two", Korean: "둘"})
	require.NoError(t, err)

	// w1だけフォルダへ。存在しないIDが混ざっていても他は処理される
	err = svc.MoveWords(ctx, []string{w1.ID, "no-such-id"}, &folder.ID)
	require.NoError(t, err)

	data, err := svc.GetData(ctx)
	require.NoError(t, err)
	byID := map[string]model.Word{}
	for _, w := range data.Words {
		byID[w.ID] = w
	}
	require.NotNil(t, byID[w1.ID].FolderID)
	assert.Equal(t, folder.ID, *byID[w1.ID].FolderID)
	assert.Nil(t, byID[w2.ID].FolderID)

	// nil を渡すと未分類へ戻る
	err = svc.MoveWords(ctx, []string{w1.ID}, nil)
	require.NoError(t, err)
	data, err = svc.GetData(ctx)
	require.NoError(t, err)
	assert.Nil(t, data.Words[1].FolderID)
}

// --- Test AddFolder / DeleteFolder ---

func Test_datasetService_AddFolder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestDatasetService(t)

	// 異常系: 空の名前は黙って無視
	folder, err := svc.AddFolder(ctx, "   ")
	assert.NoError(t, err)
	assert.Nil(t, folder)

	// 正常系: 長すぎる名前は切り詰められる
	folder, err = svc.AddFolder(ctx, strings.Repeat("あ", maxFolderNameLen+10))
	require.NoError(t, err)
	require.NotNil(t, folder)
	assert.Len(t, []rune(folder.Name), maxFolderNameLen)
}

func Test_datasetService_DeleteFolder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestDatasetService(t)

	folder, err := svc.AddFolder(ctx, "toeic")
	require.NoError(t, err)
	inFolder, err := svc.AddWord(ctx, &model.PostWordRequest{English: "one", Korean: "하나", FolderID: &folder.ID})
	require.NoError(t, err)
	outside, err := svc.AddWord(ctx, &model.PostWordRequest{English: "two", Korean: "둘"})
	require.NoError(t, err)

	// 異常系: 確認なしは拒否され、状態は変わらない
	err = svc.DeleteFolder(ctx, folder.ID, false)
	assert.ErrorIs(t, err, model.ErrConfirmationRequired)
	data, err := svc.GetData(ctx)
	require.NoError(t, err)
	assert.Len(t, data.Folders, 1)

	// 異常系: 存在しないフォルダ
	err = svc.DeleteFolder(ctx, "no-such-id", true)
	assert.ErrorIs(t, err, model.ErrNotFound)

	// 正常系: 削除され、所属単語は未分類になる（カスケード）
	err = svc.DeleteFolder(ctx, folder.ID, true)
	require.NoError(t, err)

	data, err = svc.GetData(ctx)
	require.NoError(t, err)
	assert.Empty(t, data.Folders)
	for _, w := range data.Words {
		assert.Nil(t, w.FolderID, "word %s should be unassigned", w.ID)
	}
	_ = inFolder
	_ = outside
}

// --- Test Import / ReplaceWords ---

func Test_datasetService_Import(t *testing.T) {
	ctx := context.Background()

	valid := &model.Dataset{
		Folders: []model.Folder{{ID: "f1", Name: "imported"}},
		Words:   []model.Word{{ID: "w1", English: "apple", Korean: "사과", FolderID: strPtr("f1")}},
	}

	tests := []struct {
		name      string
		data      *model.Dataset
		confirmed bool
		wantErr   error
	}{
		{
			name:      "正常系: 確認付きで全置換",
			data:      valid,
			confirmed: true,
			wantErr:   nil,
		},
		{
			name:      "異常系: 確認なしは拒否",
			data:      valid,
			confirmed: false,
			wantErr:   model.ErrConfirmationRequired,
		},
		{
			name:      "異常系: words配列が無い",
			data:      &model.Dataset{Folders: []model.Folder{}},
			confirmed: true,
			wantErr:   model.ErrInvalidInput,
		},
		{
			name:      "異常系: データ自体が無い",
			data:      nil,
			confirmed: true,
			wantErr:   model.ErrInvalidInput,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestDatasetService(t)
			_, err := svc.AddWord(ctx, &model.PostWordRequest{English: "old", Korean: "옛말"})
			require.NoError(t, err)

			err = svc.Import(ctx, tc.data, tc.confirmed)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				// 既存データは残っている
				data, loadErr := svc.GetData(ctx)
				require.NoError(t, loadErr)
				require.Len(t, data.Words, 1)
				assert.Equal(t, "old", data.Words[0].English)
				return
			}

			require.NoError(t, err)
			data, loadErr := svc.GetData(ctx)
			require.NoError(t, loadErr)
			require.Len(t, data.Words, 1)
			assert.Equal(t, "w1", data.Words[0].ID)
			require.Len(t, data.Folders, 1)
			assert.Equal(t, "f1", data.Folders[0].ID)
		})
	}
}

func Test_datasetService_ReplaceWords_同期通知は行わない(t *testing.T) {
	ctx := context.Background()
	svc, notifier := newTestDatasetService(t)

	_, err := svc.AddWord(ctx, &model.PostWordRequest{English: "local", Korean: "로컬"})
	require.NoError(t, err)
	notifier.calls = 0

	pulled := []model.Word{{ID: "r1", English: "remote", Korean: "원격", RemoteID: "page-1"}}
	require.NoError(t, svc.ReplaceWords(ctx, pulled))

	// プル結果はミラー由来なので dirty にしない
	assert.Equal(t, 0, notifier.calls)

	data, err := svc.GetData(ctx)
	require.NoError(t, err)
	require.Len(t, data.Words, 1)
	assert.Equal(t, "r1", data.Words[0].ID)
}
