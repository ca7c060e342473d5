//go:generate mockery --name DatasetService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"strings"
	"sync"

	"vocaaid/internal/middleware"
	"vocaaid/internal/model"
	"vocaaid/internal/repository"

	"gorm.io/gorm"
)

// 単語・フォルダ名の長さ上限（旧クライアントの substring 制限と同じ）
const (
	maxWordTextLen   = 500
	maxFolderNameLen = 100
)

// SyncNotifier はローカル変更の発生を同期コーディネータへ通知します。
type SyncNotifier interface {
	MarkDirty()
}

// DatasetService はデータセットに対する純粋な変更操作の集まりです。
// すべての変更は「読み込み→変更→全体保存」を1トランザクション・1イベント
// として直列化して行います。不正な入力は契約上エラーではなく黙って無視します。
type DatasetService interface {
	GetData(ctx context.Context) (*model.Dataset, error)
	AddWord(ctx context.Context, req *model.PostWordRequest) (*model.Word, error)
	DeleteWord(ctx context.Context, wordID string) error
	UpdateWord(ctx context.Context, word model.Word) (*model.Word, error)
	MoveWords(ctx context.Context, wordIDs []string, folderID *string) error
	AddFolder(ctx context.Context, name string) (*model.Folder, error)
	// DeleteFolder は confirmed が true の場合のみ実行されます。フォルダの
	// 削除と所属単語の未分類化は同一の保存内で原子的に行われます。
	DeleteFolder(ctx context.Context, folderID string, confirmed bool) error
	// Import はデータセット全体を置き換えます。破壊的操作なので確認必須です。
	Import(ctx context.Context, data *model.Dataset, confirmed bool) error
	// ReplaceWords は明示的なプル時に単語リストを丸ごと置き換えます。
	ReplaceWords(ctx context.Context, words []model.Word) error
	// ApplyRemoteIDs はプッシュで新規採番されたミラー側のページIDを
	// 書き戻します。RemoteID が未設定の単語にだけ付与します。
	ApplyRemoteIDs(ctx context.Context, ids map[string]string) error
}

type datasetService struct {
	db       *gorm.DB
	repo     repository.DatasetRepository
	notifier SyncNotifier
	mu       sync.Mutex
}

func NewDatasetService(db *gorm.DB, repo repository.DatasetRepository, notifier SyncNotifier) DatasetService {
	return &datasetService{
		db:       db,
		repo:     repo,
		notifier: notifier,
	}
}

// mutate は変更操作の共通経路です。fn が true を返した場合のみ保存し、
// 保存成功後に同期コーディネータへ変更を通知します。
func (s *datasetService) mutate(ctx context.Context, fn func(data *model.Dataset) (bool, error)) error {
	return s.mutateNotify(ctx, true, fn)
}

func (s *datasetService) mutateNotify(ctx context.Context, notify bool, fn func(data *model.Dataset) (bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := middleware.GetLogger(ctx)
	changed := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		data, err := s.repo.Load(ctx, tx)
		if err != nil {
			logger.Error("Error loading dataset in transaction", "error", err)
			return model.ErrInternalServer
		}
		changed, err = fn(data)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		if err := s.repo.Save(ctx, tx, data); err != nil {
			logger.Error("Error saving dataset in transaction", "error", err)
			return model.ErrInternalServer
		}
		return nil
	})
	if err != nil {
		return err
	}
	if notify && changed && s.notifier != nil {
		s.notifier.MarkDirty()
	}
	return nil
}

func (s *datasetService) GetData(ctx context.Context) (*model.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.MigrateLegacy(ctx, s.db); err != nil {
		// ベストエフォート。リポジトリ側でログ済み
		_ = err
	}
	data, err := s.repo.Load(ctx, s.db)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	return data, nil
}

func truncateRunes(s string, limit int) string {
	r := []rune(s)
	if len(r) > limit {
		return string(r[:limit])
	}
	return s
}

func (s *datasetService) AddWord(ctx context.Context, req *model.PostWordRequest) (*model.Word, error) {
	english := strings.TrimSpace(req.English)
	korean := strings.TrimSpace(req.Korean)
	korean2 := strings.TrimSpace(req.Korean2)
	if english == "" || korean == "" {
		return nil, nil // 契約上の黙認（何も追加されない）
	}

	word := model.Word{
		ID:       model.NewID(),
		English:  truncateRunes(english, maxWordTextLen),
		Korean:   truncateRunes(korean, maxWordTextLen),
		Korean2:  truncateRunes(korean2, maxWordTextLen),
		FolderID: req.FolderID,
	}

	err := s.mutate(ctx, func(data *model.Dataset) (bool, error) {
		// 新しい単語は先頭に入る（挿入順が意味を持つ）
		data.Words = append([]model.Word{word}, data.Words...)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &word, nil
}

func (s *datasetService) DeleteWord(ctx context.Context, wordID string) error {
	return s.mutate(ctx, func(data *model.Dataset) (bool, error) {
		for i := range data.Words {
			if data.Words[i].ID == wordID {
				data.Words = append(data.Words[:i], data.Words[i+1:]...)
				return true, nil
			}
		}
		return false, nil // 存在しなければ何もしない
	})
}

func (s *datasetService) UpdateWord(ctx context.Context, word model.Word) (*model.Word, error) {
	english := strings.TrimSpace(word.English)
	korean := strings.TrimSpace(word.Korean)
	if english == "" || korean == "" {
		return nil, nil // 空の必須フィールドは永続化しない
	}
	// 追加時と同じ正規化（トリムと長さ制限）を更新時にも適用する
	word.English = truncateRunes(english, maxWordTextLen)
	word.Korean = truncateRunes(korean, maxWordTextLen)
	word.Korean2 = truncateRunes(strings.TrimSpace(word.Korean2), maxWordTextLen)

	var updated *model.Word
	err := s.mutate(ctx, func(data *model.Dataset) (bool, error) {
		for i := range data.Words {
			if data.Words[i].ID == word.ID {
				data.Words[i] = word
				w := word
				updated = &w
				return true, nil
			}
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *datasetService) MoveWords(ctx context.Context, wordIDs []string, folderID *string) error {
	idSet := make(map[string]struct{}, len(wordIDs))
	for _, id := range wordIDs {
		idSet[id] = struct{}{}
	}
	return s.mutate(ctx, func(data *model.Dataset) (bool, error) {
		changed := false
		for i := range data.Words {
			if _, ok := idSet[data.Words[i].ID]; ok {
				data.Words[i].FolderID = folderID
				changed = true
			}
		}
		return changed, nil
	})
}

func (s *datasetService) AddFolder(ctx context.Context, name string) (*model.Folder, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, nil
	}

	folder := model.Folder{
		ID:   model.NewID(),
		Name: truncateRunes(trimmed, maxFolderNameLen),
	}
	err := s.mutate(ctx, func(data *model.Dataset) (bool, error) {
		data.Folders = append(data.Folders, folder)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

func (s *datasetService) DeleteFolder(ctx context.Context, folderID string, confirmed bool) error {
	if !confirmed {
		return model.ErrConfirmationRequired
	}
	return s.mutate(ctx, func(data *model.Dataset) (bool, error) {
		found := false
		for i := range data.Folders {
			if data.Folders[i].ID == folderID {
				data.Folders = append(data.Folders[:i], data.Folders[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return false, model.ErrNotFound
		}
		// 所属単語は未分類へ（カスケード）。孤児参照は残さない
		for i := range data.Words {
			if data.Words[i].FolderID != nil && *data.Words[i].FolderID == folderID {
				data.Words[i].FolderID = nil
			}
		}
		return true, nil
	})
}

func (s *datasetService) Import(ctx context.Context, data *model.Dataset, confirmed bool) error {
	if data == nil || data.Folders == nil || data.Words == nil {
		return model.ErrInvalidInput // 形状チェック: 両方の配列が必要
	}
	if !confirmed {
		return model.ErrConfirmationRequired
	}
	return s.mutate(ctx, func(current *model.Dataset) (bool, error) {
		current.Folders = data.Folders
		current.Words = data.Words
		return true, nil
	})
}

func (s *datasetService) ReplaceWords(ctx context.Context, words []model.Word) error {
	// プルで取り込んだ内容はミラーと一致しているので dirty にはしない
	return s.mutateNotify(ctx, false, func(data *model.Dataset) (bool, error) {
		if words == nil {
			words = []model.Word{}
		}
		data.Words = words
		return true, nil
	})
}

func (s *datasetService) ApplyRemoteIDs(ctx context.Context, ids map[string]string) error {
	if len(ids) == 0 {
		return nil
	}
	// RemoteID はミラー側の事実の反映なので dirty にはしない
	return s.mutateNotify(ctx, false, func(data *model.Dataset) (bool, error) {
		changed := false
		for id, remoteID := range ids {
			if w := data.FindWord(id); w != nil && w.RemoteID == "" {
				w.RemoteID = remoteID
				changed = true
			}
		}
		return changed, nil
	})
}
