// internal/service/sync_service_test.go
package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"vocaaid/internal/model"
	remotemocks "vocaaid/internal/remote/mocks"
	"vocaaid/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestSyncService(t *testing.T, startOnline bool, debounce time.Duration) (*SyncCoordinator, *remotemocks.MockClient, *gorm.DB, repository.DatasetRepository) {
	t.Helper()
	db := setupTestDB(t)
	repo := repository.NewGormDatasetRepository()
	mockRemote := remotemocks.NewMockClient(t)
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewSyncService(mockRemote, debounce, startOnline, testLogger)
	svc.BindStore(NewDatasetService(db, repo, svc))
	t.Cleanup(svc.Stop)
	return svc, mockRemote, db, repo
}

func seedDataset(t *testing.T, db *gorm.DB, repo repository.DatasetRepository, data *model.Dataset) {
	t.Helper()
	require.NoError(t, repo.Save(context.Background(), db, data))
}

func Test_syncService_MarkDirty(t *testing.T) {
	// デバウンスを長くして、テスト中に自動プッシュが走らないようにする
	svc, _, _, _ := newTestSyncService(t, true, time.Hour)

	assert.False(t, svc.Status().HasLocalChanges)
	svc.MarkDirty()
	assert.True(t, svc.Status().HasLocalChanges)
}

func Test_syncService_Sync_オフライン時は何もしない(t *testing.T) {
	svc, _, _, _ := newTestSyncService(t, false, time.Hour)

	svc.MarkDirty()
	// PushAll に期待を設定していないので、呼ばれればテストは失敗する
	require.NoError(t, svc.Sync(context.Background()))
	assert.True(t, svc.Status().HasLocalChanges, "オフラインの手動同期では dirty のまま")
}

func Test_syncService_Sync_変更なしなら何もしない(t *testing.T) {
	svc, _, _, _ := newTestSyncService(t, true, time.Hour)

	require.NoError(t, svc.Sync(context.Background()))
	assert.Nil(t, svc.Status().LastSyncTime)
}

func Test_syncService_Sync_成功でdirtyが消えRemoteIDが書き戻される(t *testing.T) {
	ctx := context.Background()
	svc, mockRemote, db, repo := newTestSyncService(t, true, time.Hour)

	seedDataset(t, db, repo, &model.Dataset{
		Folders: []model.Folder{},
		Words: []model.Word{
			{ID: "w1", English: "apple", Korean: "사과"},
			{ID: "w2", English: "banana", Korean: "바나나", RemoteID: "page-2"},
		},
	})
	svc.MarkDirty()

	mockRemote.On("PushAll", mock.Anything, mock.AnythingOfType("*model.Dataset")).
		Run(func(args mock.Arguments) {
			data := args.Get(1).(*model.Dataset)
			// 作成された単語にはミラーのIDが割り当てられる
			for i := range data.Words {
				if data.Words[i].RemoteID == "" {
					data.Words[i].RemoteID = "page-" + data.Words[i].ID
				}
			}
		}).Return(nil).Once()

	require.NoError(t, svc.Sync(ctx))

	status := svc.Status()
	assert.False(t, status.HasLocalChanges)
	assert.False(t, status.IsLoading)
	require.NotNil(t, status.LastSyncTime)
	assert.WithinDuration(t, time.Now(), *status.LastSyncTime, time.Second*5)

	// 新規作成分の RemoteID が永続化されている
	data, err := repo.Load(ctx, db)
	require.NoError(t, err)
	byID := map[string]model.Word{}
	for _, w := range data.Words {
		byID[w.ID] = w
	}
	assert.Equal(t, "page-w1", byID["w1"].RemoteID)
	assert.Equal(t, "page-2", byID["w2"].RemoteID)
}

func Test_syncService_Sync_プッシュ中の変更が失われない(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := repository.NewGormDatasetRepository()
	mockRemote := remotemocks.NewMockClient(t)
	svc := NewSyncService(mockRemote, time.Hour, true, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(svc.Stop)
	datasets := NewDatasetService(db, repo, svc)
	svc.BindStore(datasets)

	seedDataset(t, db, repo, &model.Dataset{
		Folders: []model.Folder{},
		Words:   []model.Word{{ID: "w1", English: "apple", Korean: "사과"}},
	})
	svc.MarkDirty()

	mockRemote.On("PushAll", mock.Anything, mock.AnythingOfType("*model.Dataset")).
		Run(func(args mock.Arguments) {
			data := args.Get(1).(*model.Dataset)
			for i := range data.Words {
				if data.Words[i].RemoteID == "" {
					data.Words[i].RemoteID = "page-" + data.Words[i].ID
				}
			}
			// プッシュの最中に届いた通常の変更
			_, err := datasets.AddWord(ctx, &model.PostWordRequest{English: "banana", Korean: "바나나"})
			require.NoError(t, err)
		}).Return(nil).Once()

	require.NoError(t, svc.Sync(ctx))

	// RemoteID の書き戻しがプッシュ中の追加を上書きしてはいけない
	data, err := repo.Load(ctx, db)
	require.NoError(t, err)
	require.Len(t, data.Words, 2)
	var foundBanana bool
	for _, w := range data.Words {
		switch w.English {
		case "apple":
			assert.Equal(t, "page-w1", w.RemoteID)
		case "banana":
			foundBanana = true
			assert.Empty(t, w.RemoteID)
		}
	}
	assert.True(t, foundBanana, "プッシュ中に追加された単語が残っているはず")
	// プッシュ中の変更なので dirty は残り、追加の同期が予約される
	assert.True(t, svc.Status().HasLocalChanges)
}

func Test_syncService_Sync_途中失敗でも採番済みRemoteIDは書き戻される(t *testing.T) {
	ctx := context.Background()
	svc, mockRemote, db, repo := newTestSyncService(t, true, time.Hour)

	seedDataset(t, db, repo, &model.Dataset{
		Folders: []model.Folder{},
		Words: []model.Word{
			{ID: "w1", English: "apple", Korean: "사과"},
			{ID: "w2", English: "banana", Korean: "바나나"},
		},
	})
	svc.MarkDirty()

	mockRemote.On("PushAll", mock.Anything, mock.AnythingOfType("*model.Dataset")).
		Run(func(args mock.Arguments) {
			data := args.Get(1).(*model.Dataset)
			// 1件目の作成だけ成功した時点で失敗した状況
			data.Words[0].RemoteID = "page-w1"
		}).Return(model.ErrRemoteUnavailable).Once()

	require.NoError(t, svc.Sync(ctx))

	status := svc.Status()
	assert.True(t, status.HasLocalChanges)
	assert.Nil(t, status.LastSyncTime)

	// 採番済みの RemoteID は残す。次のプッシュで同じページを二重作成しない
	data, err := repo.Load(ctx, db)
	require.NoError(t, err)
	byID := map[string]model.Word{}
	for _, w := range data.Words {
		byID[w.ID] = w
	}
	assert.Equal(t, "page-w1", byID["w1"].RemoteID)
	assert.Empty(t, byID["w2"].RemoteID)
}

func Test_syncService_Sync_失敗時はdirtyのまま(t *testing.T) {
	ctx := context.Background()
	svc, mockRemote, db, repo := newTestSyncService(t, true, time.Hour)

	seedDataset(t, db, repo, &model.Dataset{
		Folders: []model.Folder{},
		Words:   []model.Word{{ID: "w1", English: "apple", Korean: "사과"}},
	})
	svc.MarkDirty()

	mockRemote.On("PushAll", mock.Anything, mock.AnythingOfType("*model.Dataset")).
		Return(errors.New("remote mirror unavailable")).Once()

	// プッシュの失敗は手動同期のエラーとしては伝播しない（ログに残るだけ）
	require.NoError(t, svc.Sync(ctx))

	status := svc.Status()
	assert.True(t, status.HasLocalChanges, "失敗したプッシュは dirty を消さない")
	assert.Nil(t, status.LastSyncTime)
	assert.False(t, status.IsLoading)
}

func Test_syncService_デバウンスで自動プッシュされる(t *testing.T) {
	svc, mockRemote, db, repo := newTestSyncService(t, true, 10*time.Millisecond)

	seedDataset(t, db, repo, &model.Dataset{
		Folders: []model.Folder{},
		Words:   []model.Word{{ID: "w1", English: "apple", Korean: "사과"}},
	})

	mockRemote.On("PushAll", mock.Anything, mock.AnythingOfType("*model.Dataset")).
		Return(nil).Once()

	svc.MarkDirty()

	require.Eventually(t, func() bool {
		return !svc.Status().HasLocalChanges
	}, time.Second*2, 10*time.Millisecond, "デバウンス満了で自動的にプッシュされるはず")
}

func Test_syncService_オンライン復帰で保留中の変更が送出される(t *testing.T) {
	svc, mockRemote, db, repo := newTestSyncService(t, false, 10*time.Millisecond)

	seedDataset(t, db, repo, &model.Dataset{
		Folders: []model.Folder{},
		Words:   []model.Word{{ID: "w1", English: "apple", Korean: "사과"}},
	})

	// オフライン中の変更はタイマーを張らない
	svc.MarkDirty()
	time.Sleep(50 * time.Millisecond)
	assert.True(t, svc.Status().HasLocalChanges)

	mockRemote.On("PushAll", mock.Anything, mock.AnythingOfType("*model.Dataset")).
		Return(nil).Once()

	svc.SetOnline(true)
	require.Eventually(t, func() bool {
		return !svc.Status().HasLocalChanges
	}, time.Second*2, 10*time.Millisecond)
}

func Test_syncService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: ミラーの内容でローカルを置き換える", func(t *testing.T) {
		svc, mockRemote, db, repo := newTestSyncService(t, true, time.Hour)

		seedDataset(t, db, repo, &model.Dataset{
			Folders: []model.Folder{{ID: "f1", Name: "keep"}},
			Words:   []model.Word{{ID: "local", English: "local", Korean: "로컬"}},
		})
		svc.MarkDirty()

		pulled := []model.Word{{ID: "remote-1", English: "remote", Korean: "원격", RemoteID: "remote-1"}}
		mockRemote.On("Enabled").Return(true).Once()
		mockRemote.On("FetchAll", mock.Anything).Return(pulled, nil).Once()

		require.NoError(t, svc.Refresh(ctx))

		status := svc.Status()
		assert.False(t, status.HasLocalChanges)
		require.NotNil(t, status.LastSyncTime)

		data, err := repo.Load(ctx, db)
		require.NoError(t, err)
		require.Len(t, data.Words, 1)
		assert.Equal(t, "remote-1", data.Words[0].ID)
		// フォルダはプルの対象外なので残る
		require.Len(t, data.Folders, 1)
		assert.Equal(t, "f1", data.Folders[0].ID)
	})

	t.Run("正常系: ミラー未設定なら何もしない", func(t *testing.T) {
		svc, mockRemote, db, repo := newTestSyncService(t, true, time.Hour)

		seedDataset(t, db, repo, &model.Dataset{
			Folders: []model.Folder{},
			Words:   []model.Word{{ID: "local", English: "local", Korean: "로컬"}},
		})

		mockRemote.On("Enabled").Return(false).Once()
		require.NoError(t, svc.Refresh(ctx))

		// ローカルは消えていない
		data, err := repo.Load(ctx, db)
		require.NoError(t, err)
		assert.Len(t, data.Words, 1)
	})

	t.Run("異常系: オフライン中のプルは何もしない", func(t *testing.T) {
		svc, _, _, _ := newTestSyncService(t, false, time.Hour)
		require.NoError(t, svc.Refresh(ctx))
	})

	t.Run("異常系: 取得失敗はエラーを返しローカルを壊さない", func(t *testing.T) {
		svc, mockRemote, db, repo := newTestSyncService(t, true, time.Hour)

		seedDataset(t, db, repo, &model.Dataset{
			Folders: []model.Folder{},
			Words:   []model.Word{{ID: "local", English: "local", Korean: "로컬"}},
		})

		mockRemote.On("Enabled").Return(true).Once()
		mockRemote.On("FetchAll", mock.Anything).Return(nil, model.ErrRemoteUnavailable).Once()

		err := svc.Refresh(ctx)
		assert.ErrorIs(t, err, model.ErrRemoteUnavailable)

		data, loadErr := repo.Load(ctx, db)
		require.NoError(t, loadErr)
		assert.Len(t, data.Words, 1)
	})
}
