// internal/model/dataset.go
package model

import "time"

// Dataset はアプリケーションの全データ（永続化の単位）です。
// Words は挿入順が意味を持ちます（追加時は先頭に入る）。
type Dataset struct {
	Folders []Folder `json:"folders"`
	Words   []Word   `json:"words"`
}

// NewDataset は空のデータセットを返します。
// JSONにした際に null ではなく [] になるよう、スライスは常に非nilです。
func NewDataset() *Dataset {
	return &Dataset{Folders: []Folder{}, Words: []Word{}}
}

// Clone はデータセットの深いコピーを返します。
// セッションのスナップショットや同期時の読み取りに使います。
func (d *Dataset) Clone() *Dataset {
	c := &Dataset{
		Folders: make([]Folder, len(d.Folders)),
		Words:   make([]Word, len(d.Words)),
	}
	copy(c.Folders, d.Folders)
	copy(c.Words, d.Words)
	for i := range c.Words {
		if d.Words[i].FolderID != nil {
			id := *d.Words[i].FolderID
			c.Words[i].FolderID = &id
		}
	}
	return c
}

// FindWord はIDが一致する単語へのポインタを返します。見つからなければ nil。
func (d *Dataset) FindWord(id string) *Word {
	for i := range d.Words {
		if d.Words[i].ID == id {
			return &d.Words[i]
		}
	}
	return nil
}

// IsEmpty はフォルダも単語も存在しないかどうかを返します（レガシー移行の判定用）。
func (d *Dataset) IsEmpty() bool {
	return len(d.Folders) == 0 && len(d.Words) == 0
}

// ExportDocument はエクスポートAPIが生成するJSONドキュメントです。
type ExportDocument struct {
	Folders    []Folder  `json:"folders"`
	Words      []Word    `json:"words"`
	ExportedAt time.Time `json:"exportedAt"`
	Version    string    `json:"version"`
	Source     string    `json:"source"`
}

// ImportRequest はデータセット全体の上書き取り込みリクエストです。
// Confirm が false の場合、操作は拒否されます（破壊的操作のガード）。
type ImportRequest struct {
	Data    *Dataset `json:"data" validate:"required"`
	Confirm bool     `json:"confirm"`
}
