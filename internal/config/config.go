// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Sync struct {
		// 変更後にプッシュを予約するまでの待ち時間（秒）
		DebounceSeconds int `mapstructure:"debounce_seconds"`
		// 起動時のオンライン状態の初期値
		StartOnline bool `mapstructure:"start_online"`
	} `mapstructure:"sync"`
	Notion struct {
		Token      string `mapstructure:"token"`
		DatabaseID string `mapstructure:"database_id"`
		BaseURL    string `mapstructure:"base_url"`
		Version    string `mapstructure:"version"`
	} `mapstructure:"notion"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数からの上書き (例: APP_NOTION_TOKEN)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("notion.token", "NOTION_TOKEN")
	viper.BindEnv("notion.database_id", "NOTION_DATABASE_ID")
	viper.BindEnv("database.url", "DATABASE_URL")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Database.URL == "" {
		log.Printf("Database URL not set, using default '%s'", DefaultDatabaseURL)
		Cfg.Database.URL = DefaultDatabaseURL
	}
	if Cfg.Sync.DebounceSeconds <= 0 {
		Cfg.Sync.DebounceSeconds = DefaultSyncDebounceSeconds
	}
	if !viper.IsSet("sync.start_online") {
		// 接続性イベントが届くまでの初期値。ヘッドレス運用ではオンライン扱いにする
		Cfg.Sync.StartOnline = true
	}
	if Cfg.Notion.BaseURL == "" {
		Cfg.Notion.BaseURL = DefaultNotionBaseURL
	}
	if Cfg.Notion.Version == "" {
		Cfg.Notion.Version = DefaultNotionVersion
	}
	if Cfg.Notion.Token == "" {
		log.Println("Warning: Notion token is not set. Remote sync runs in disabled mode.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Sync Debounce: %ds", Cfg.Sync.DebounceSeconds)

	return nil
}
