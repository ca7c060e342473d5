// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "VocaAid"
	AppVersion = "2.0"
)

// デフォルト設定値
const (
	DefaultServerPort          = ":8080"
	DefaultDatabaseURL         = "file:vocaaid.db"
	DefaultLogLevel            = "info"
	DefaultSyncDebounceSeconds = 2
	DefaultNotionBaseURL       = "https://api.notion.com/v1"
	DefaultNotionVersion       = "2022-06-28"
)

// 永続化キー。旧Webクライアントの localStorage キーをそのまま引き継いでいます。
const (
	StorageKeyDataset = "vocab-app-data"
	// フォルダ導入前の単語配列が入っていた廃止済みキー（初回ロード時に移行して削除）
	StorageKeyLegacyWords = "vocab-words"
)

// エクスポートファイルのメタデータ
const (
	ExportVersion = "2.0"
	ExportSource  = "VocaAid-Server"
)
