//go:generate mockery --name Client --output ./mocks --outpkg mocks --case=underscore
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"vocaaid/internal/config"
	"vocaaid/internal/model"
)

// Client はリモートミラー（Notionデータベース）への操作面です。
// 呼び出し側はすべての操作を失敗し得る非同期呼び出しとして扱います。
type Client interface {
	// Enabled は実際にリモートへ到達できる設定かどうかを返します。
	Enabled() bool
	// FetchAll はミラー上の全単語を取得します。
	FetchAll(ctx context.Context) ([]model.Word, error)
	// Create は単語のレコードを作成し、リモートIDを返します。
	Create(ctx context.Context, word model.Word) (string, error)
	// Update は既存レコードを更新します。RemoteID が必須です。
	Update(ctx context.Context, word model.Word) error
	// Delete はレコードをアーカイブします。
	Delete(ctx context.Context, remoteID string) error
	// PushAll はデータセット全体を送出します。RemoteID の有無で
	// 作成・更新を振り分け、新規作成分の RemoteID を data に書き戻します。
	PushAll(ctx context.Context, data *model.Dataset) error
}

// NewClient はNotionクライアントを生成します。トークン未設定の場合は
// 何もしない無効化クライアントを返します（旧クライアントの
// `notion = NOTION_TOKEN ? new Client(...) : null` と同じ扱い）。
func NewClient(cfg config.Config, logger *slog.Logger) Client {
	if cfg.Notion.Token == "" || cfg.Notion.DatabaseID == "" {
		logger.Info("Notion credentials not configured, remote mirror is disabled")
		return &disabledClient{logger: logger}
	}
	return &notionClient{
		baseURL:    cfg.Notion.BaseURL,
		token:      cfg.Notion.Token,
		databaseID: cfg.Notion.DatabaseID,
		version:    cfg.Notion.Version,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

type notionClient struct {
	baseURL    string
	token      string
	databaseID string
	version    string
	httpClient *http.Client
	logger     *slog.Logger
}

func (c *notionClient) Enabled() bool {
	return true
}

func (c *notionClient) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("notion: marshal request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("notion: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.version)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notion: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.logger.Warn("Notion API returned an error",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(raw)),
		)
		return fmt.Errorf("notion: %s %s: status %d: %w", method, path, resp.StatusCode, model.ErrRemoteUnavailable)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("notion: decode response: %w", err)
		}
	}
	return nil
}

func (c *notionClient) FetchAll(ctx context.Context) ([]model.Word, error) {
	var words []model.Word
	var cursor *string
	for {
		body := map[string]interface{}{}
		if cursor != nil {
			body["start_cursor"] = *cursor
		}
		var resp queryResponse
		if err := c.do(ctx, http.MethodPost, "/databases/"+c.databaseID+"/query", body, &resp); err != nil {
			return nil, err
		}
		for _, p := range resp.Results {
			words = append(words, pageToWord(p))
		}
		if !resp.HasMore || resp.NextCursor == nil {
			break
		}
		cursor = resp.NextCursor
	}
	return words, nil
}

func (c *notionClient) Create(ctx context.Context, word model.Word) (string, error) {
	body := map[string]interface{}{
		"parent":     map[string]string{"database_id": c.databaseID},
		"properties": wordToProperties(word),
	}
	var resp page
	if err := c.do(ctx, http.MethodPost, "/pages", body, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c *notionClient) Update(ctx context.Context, word model.Word) error {
	if word.RemoteID == "" {
		return model.ErrMissingRemoteID
	}
	body := map[string]interface{}{
		"properties": wordToProperties(word),
	}
	return c.do(ctx, http.MethodPatch, "/pages/"+word.RemoteID, body, nil)
}

func (c *notionClient) Delete(ctx context.Context, remoteID string) error {
	if remoteID == "" {
		return model.ErrMissingRemoteID
	}
	body := map[string]interface{}{"archived": true}
	return c.do(ctx, http.MethodPatch, "/pages/"+remoteID, body, nil)
}

func (c *notionClient) PushAll(ctx context.Context, data *model.Dataset) error {
	for i := range data.Words {
		w := data.Words[i]
		if w.RemoteID == "" {
			remoteID, err := c.Create(ctx, w)
			if err != nil {
				return err
			}
			data.Words[i].RemoteID = remoteID
		} else {
			if err := c.Update(ctx, w); err != nil {
				return err
			}
		}
	}
	return nil
}
