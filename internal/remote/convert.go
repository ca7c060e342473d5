// internal/remote/convert.go
package remote

import "vocaaid/internal/model"

// Notionのプロパティスキーマ。旧クライアントの convertWordToNotionProperties /
// convertNotionToWord が定義していた形をそのまま使います。
// English は title、Korean / Korean2 / FolderId は rich_text、IsStarred は checkbox。

type textContent struct {
	Content string `json:"content"`
}

type richText struct {
	Text textContent `json:"text"`
}

type titleProperty struct {
	Title []richText `json:"title"`
}

type richTextProperty struct {
	RichText []richText `json:"rich_text"`
}

type checkboxProperty struct {
	Checkbox bool `json:"checkbox"`
}

type pageProperties struct {
	English   *titleProperty    `json:"English,omitempty"`
	Korean    *richTextProperty `json:"Korean,omitempty"`
	Korean2   *richTextProperty `json:"Korean2,omitempty"`
	FolderID  *richTextProperty `json:"FolderId,omitempty"`
	IsStarred *checkboxProperty `json:"IsStarred,omitempty"`
}

type page struct {
	ID         string         `json:"id"`
	Properties pageProperties `json:"properties"`
}

type queryResponse struct {
	Results    []page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

func newRichText(s string) []richText {
	return []richText{{Text: textContent{Content: s}}}
}

// wordToProperties は単語をNotionページのプロパティへ変換します。
func wordToProperties(w model.Word) pageProperties {
	props := pageProperties{
		English:   &titleProperty{Title: newRichText(w.English)},
		Korean:    &richTextProperty{RichText: newRichText(w.Korean)},
		IsStarred: &checkboxProperty{Checkbox: w.IsStarred},
	}
	if w.Korean2 != "" {
		props.Korean2 = &richTextProperty{RichText: newRichText(w.Korean2)}
	}
	if w.FolderID != nil && *w.FolderID != "" {
		props.FolderID = &richTextProperty{RichText: newRichText(*w.FolderID)}
	}
	return props
}

func firstText(rt []richText) string {
	if len(rt) == 0 {
		return ""
	}
	return rt[0].Text.Content
}

// pageToWord はNotionページを単語へ変換します。
func pageToWord(p page) model.Word {
	w := model.Word{
		ID:       p.ID,
		RemoteID: p.ID,
	}
	if p.Properties.English != nil {
		w.English = firstText(p.Properties.English.Title)
	}
	if p.Properties.Korean != nil {
		w.Korean = firstText(p.Properties.Korean.RichText)
	}
	if p.Properties.Korean2 != nil {
		w.Korean2 = firstText(p.Properties.Korean2.RichText)
	}
	if p.Properties.FolderID != nil {
		if id := firstText(p.Properties.FolderID.RichText); id != "" {
			w.FolderID = &id
		}
	}
	if p.Properties.IsStarred != nil {
		w.IsStarred = p.Properties.IsStarred.Checkbox
	}
	return w
}
