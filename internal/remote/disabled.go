// internal/remote/disabled.go
package remote

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"vocaaid/internal/model"
)

// disabledClient はトークン未設定時のクライアントです。旧クライアントの
// スタブ実装と同様、各操作はログを残して何もしません。Create はローカルな
// プレースホルダIDを返します。
type disabledClient struct {
	logger *slog.Logger
}

func (c *disabledClient) Enabled() bool {
	return false
}

func (c *disabledClient) FetchAll(ctx context.Context) ([]model.Word, error) {
	c.logger.Info("Notion sync not configured, returning no words")
	return []model.Word{}, nil
}

func (c *disabledClient) Create(ctx context.Context, word model.Word) (string, error) {
	c.logger.Info("Notion word creation skipped (not configured)", slog.String("english", word.English))
	return "local-" + uuid.NewString(), nil
}

func (c *disabledClient) Update(ctx context.Context, word model.Word) error {
	if word.RemoteID == "" {
		return model.ErrMissingRemoteID
	}
	c.logger.Info("Notion word update skipped (not configured)", slog.String("word_id", word.ID))
	return nil
}

func (c *disabledClient) Delete(ctx context.Context, remoteID string) error {
	if remoteID == "" {
		return model.ErrMissingRemoteID
	}
	c.logger.Info("Notion word deletion skipped (not configured)", slog.String("remote_id", remoteID))
	return nil
}

func (c *disabledClient) PushAll(ctx context.Context, data *model.Dataset) error {
	c.logger.Info("Notion sync skipped (not configured)", slog.Int("words", len(data.Words)))
	return nil
}
