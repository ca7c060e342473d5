//go:generate mockery --name DatasetRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vocaaid/internal/config"
	"vocaaid/internal/middleware"
	"vocaaid/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StorageEntry は旧クライアントの localStorage に相当するKVテーブルの1行です。
// データセット全体が1つのJSONドキュメントとして Value に入ります。
type StorageEntry struct {
	Key       string         `gorm:"primaryKey"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (StorageEntry) TableName() string {
	return "app_storage"
}

// DatasetRepository インターフェース
type DatasetRepository interface {
	// Load はデータセットを読み込みます。行が無い・JSONが壊れている場合は
	// 空のデータセットを返し、エラーにはしません。
	Load(ctx context.Context, db *gorm.DB) (*model.Dataset, error)
	// Save はデータセット全体を上書き保存します。
	Save(ctx context.Context, tx *gorm.DB, data *model.Dataset) error
	// MigrateLegacy は廃止キーの単語配列を一度だけ新形式へ移行します。
	// ベストエフォートであり、失敗はログに残して握りつぶします。
	MigrateLegacy(ctx context.Context, db *gorm.DB) error
}

type gormDatasetRepository struct{}

func NewGormDatasetRepository() DatasetRepository {
	return &gormDatasetRepository{}
}

func (r *gormDatasetRepository) Load(ctx context.Context, db *gorm.DB) (*model.Dataset, error) {
	logger := middleware.GetLogger(ctx)

	var entry StorageEntry
	result := db.WithContext(ctx).Where("key = ?", config.StorageKeyDataset).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.NewDataset(), nil
		}
		logger.Error("Error loading dataset from DB", "error", result.Error)
		return nil, fmt.Errorf("gormDatasetRepository.Load: %w", result.Error)
	}

	var data model.Dataset
	if err := json.Unmarshal(entry.Value, &data); err != nil {
		// 壊れたデータは「無かったこと」にして空から始める（致命傷にしない）
		logger.Warn("Stored dataset is malformed, falling back to empty dataset", "error", err)
		return model.NewDataset(), nil
	}
	if data.Folders == nil {
		data.Folders = []model.Folder{}
	}
	if data.Words == nil {
		data.Words = []model.Word{}
	}
	return &data, nil
}

func (r *gormDatasetRepository) Save(ctx context.Context, tx *gorm.DB, data *model.Dataset) error {
	logger := middleware.GetLogger(ctx)

	raw, err := json.Marshal(data)
	if err != nil {
		logger.Error("Error marshaling dataset", "error", err)
		return fmt.Errorf("gormDatasetRepository.Save: %w", err)
	}

	entry := StorageEntry{Key: config.StorageKeyDataset, Value: raw, UpdatedAt: time.Now()}
	result := tx.WithContext(ctx).Save(&entry)
	if result.Error != nil {
		logger.Error("Error saving dataset to DB", "error", result.Error)
		return fmt.Errorf("gormDatasetRepository.Save: %w", result.Error)
	}
	return nil
}

func (r *gormDatasetRepository) MigrateLegacy(ctx context.Context, db *gorm.DB) error {
	logger := middleware.GetLogger(ctx)

	var legacy StorageEntry
	result := db.WithContext(ctx).Where("key = ?", config.StorageKeyLegacyWords).First(&legacy)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil // 移行対象なし
		}
		logger.Warn("Failed to read legacy word list, skipping migration", "error", result.Error)
		return nil
	}

	// 移行の成否に関わらず廃止キーは消す（旧クライアントの finally と同じ）
	defer func() {
		if err := db.WithContext(ctx).Delete(&StorageEntry{}, "key = ?", config.StorageKeyLegacyWords).Error; err != nil {
			logger.Warn("Failed to delete legacy word list", "error", err)
		}
	}()

	var oldWords []model.Word
	if err := json.Unmarshal(legacy.Value, &oldWords); err != nil {
		logger.Warn("Failed to migrate old words", "error", err)
		return nil
	}
	if len(oldWords) == 0 {
		return nil
	}

	current, err := r.Load(ctx, db)
	if err != nil {
		logger.Warn("Failed to load dataset during migration", "error", err)
		return nil
	}
	if !current.IsEmpty() {
		// 既に新形式のデータがある場合は移行しない（冪等性）
		return nil
	}

	migrated := model.NewDataset()
	for _, w := range oldWords {
		w.FolderID = nil
		migrated.Words = append(migrated.Words, w)
	}
	if err := r.Save(ctx, db, migrated); err != nil {
		logger.Warn("Failed to save migrated dataset", "error", err)
		return nil
	}

	logger.Info("Migrated legacy word list", "count", len(migrated.Words))
	return nil
}
