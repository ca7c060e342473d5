// internal/model/word.go
package model

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Word は単語とその訳を表します。
// JSONフィールド名は旧Webクライアントが localStorage に保存していた形式と
// 互換にしてあります（エクスポートファイルの往復やレガシー移行のため）。
type Word struct {
	ID        string  `json:"id"`
	English   string  `json:"english"`           // 出題される英単語
	Korean    string  `json:"korean"`            // 第一の訳（正解判定に使用）
	Korean2   string  `json:"korean2,omitempty"` // 第二の訳（任意、これも正解扱い）
	FolderID  *string `json:"folderId"`          // nil は「未分類」を意味します
	IsStarred bool    `json:"isStarred,omitempty"`
	RemoteID  string  `json:"notionPageId,omitempty"` // 同期済みの場合のみ存在
}

// Folder は単語をまとめるフォルダです。
type Folder struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	RemoteID string `json:"notionPageId,omitempty"`
}

const base36Chars = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID は時刻ベースのIDを生成します。衝突回避のためランダムな接尾辞を付けます。
// 形式は旧クライアントの generateId と同じ `<unix millis>-<base36 9文字>` です。
func NewID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = base36Chars[rand.IntN(len(base36Chars))]
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}

// 単語作成リクエストDTO
type PostWordRequest struct {
	English  string  `json:"english" validate:"required,max=500"`
	Korean   string  `json:"korean" validate:"required,max=500"`
	Korean2  string  `json:"korean2" validate:"omitempty,max=500"`
	FolderID *string `json:"folderId"`
}

// 単語更新（全体置換）リクエストDTO
type PutWordRequest struct {
	English   string  `json:"english" validate:"required,max=500"`
	Korean    string  `json:"korean" validate:"required,max=500"`
	Korean2   string  `json:"korean2" validate:"omitempty,max=500"`
	FolderID  *string `json:"folderId"`
	IsStarred bool    `json:"isStarred"`
}

// 複数単語のフォルダ移動リクエストDTO
type MoveWordsRequest struct {
	WordIDs  []string `json:"wordIds" validate:"required,min=1"`
	FolderID *string  `json:"folderId"` // nil で未分類へ移動
}

// フォルダ作成リクエストDTO
type PostFolderRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}
