// internal/model/selection.go
package model

// SelectionMode は学習・クイズ対象の選び方です。
// 旧クライアントは 'all' | 'unassigned' | 'starred' | 'custom' | null | <id>
// を一つの文字列フィールドに詰め込んでいましたが、ここでは閉じたタグ付き
// バリアントとして表現します（「フォルダなし」と「選択モード」の曖昧さを排除）。
type SelectionMode string

const (
	SelectionAll        SelectionMode = "all"
	SelectionUnassigned SelectionMode = "unassigned"
	SelectionStarred    SelectionMode = "starred"
	SelectionFolder     SelectionMode = "folder"
	SelectionCustom     SelectionMode = "custom"
)

// Selection はセッション開始時の単語絞り込み条件です。
type Selection struct {
	Mode SelectionMode `json:"mode" validate:"required,oneof=all unassigned starred folder custom"`
	// Mode == folder のとき対象のフォルダID
	FolderID string `json:"folderId,omitempty" validate:"required_if=Mode folder"`
	// Mode == custom のとき対象のフォルダID集合
	FolderIDs []string `json:"folderIds,omitempty"`
	// Mode == custom のとき未分類の単語を含めるか
	IncludeUnassigned bool `json:"includeUnassigned,omitempty"`
	// Mode == custom のとき別印付きの単語に限定するか
	StarredOnly bool `json:"starredOnly,omitempty"`
}

// Matches は単語が選択条件に合致するかを判定します。
func (s Selection) Matches(w Word) bool {
	switch s.Mode {
	case SelectionAll:
		return true
	case SelectionUnassigned:
		return w.FolderID == nil
	case SelectionStarred:
		return w.IsStarred
	case SelectionFolder:
		return w.FolderID != nil && *w.FolderID == s.FolderID
	case SelectionCustom:
		if s.StarredOnly && !w.IsStarred {
			return false
		}
		if w.FolderID == nil {
			return s.IncludeUnassigned
		}
		for _, id := range s.FolderIDs {
			if id == *w.FolderID {
				return true
			}
		}
		return false
	}
	return false
}

// Filter はデータセットから選択条件に合致する単語を順序を保って抽出します。
func (s Selection) Filter(d *Dataset) []Word {
	var words []Word
	for _, w := range d.Words {
		if s.Matches(w) {
			words = append(words, w)
		}
	}
	return words
}
