package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config はアプリケーション全体の設定を保持する構造体
type Config struct {
	Server ServerConfig `yaml:"server"`
	Static StaticConfig `yaml:"static"`
}

// ServerConfig はHTTPサーバーの設定
type ServerConfig struct {
	Host string `yaml:"host"` // リッスンするホスト
	Port int    `yaml:"port"` // リッスンするポート番号

	// タイムアウト設定
	ReadTimeout  time.Duration `yaml:"read_timeout"`  // 読み込みタイムアウト
	WriteTimeout time.Duration `yaml:"write_timeout"` // 書き込みタイムアウト
}

// StaticConfig は静的ファイル配信の設定
type StaticConfig struct {
	Root      string `yaml:"root"`       // 配信ルートディレクトリ
	IndexFile string `yaml:"index_file"` // ディレクトリのインデックスファイル名
}

// Load は設定を読み込む
// ポートは環境変数PORTで上書きできる。ルートディレクトリは
// サーバー実行ファイルのあるディレクトリに固定される
func Load() (*Config, error) {
	root, err := executableDir()
	if err != nil {
		return nil, fmt.Errorf("ルートディレクトリの特定に失敗: %w", err)
	}

	// デフォルト設定を作成
	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsIntOrDefault("PORT", 8000),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Static: StaticConfig{
			Root:      root,
			IndexFile: "index.html",
		},
	}

	// 設定の検証
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}

	return cfg, nil
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	// サーバー設定の検証
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("無効なポート番号: %d", c.Server.Port)
	}

	// 配信ルートの検証
	if c.Static.Root == "" {
		return fmt.Errorf("配信ルートディレクトリが設定されていません")
	}
	info, err := os.Stat(c.Static.Root)
	if err != nil {
		return fmt.Errorf("配信ルートディレクトリにアクセスできません: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("配信ルートがディレクトリではありません: %s", c.Static.Root)
	}

	// インデックスファイル名はパス区切りを含まない単純な名前のみ
	if c.Static.IndexFile != "" && strings.ContainsAny(c.Static.IndexFile, `/\`) {
		return fmt.Errorf("無効なインデックスファイル名: %s", c.Static.IndexFile)
	}

	return nil
}

// ServerAddress はサーバーのリッスンアドレスを返す
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// executableDir はサーバー実行ファイルのあるディレクトリを返す
func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// getEnvOrDefault は環境変数を取得し、設定されていない場合はデフォルト値を返す
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault は環境変数を整数として取得し、設定されていない場合はデフォルト値を返す
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var intVal int
		if _, err := fmt.Sscanf(value, "%d", &intVal); err == nil {
			return intVal
		}
	}
	return defaultValue
}
