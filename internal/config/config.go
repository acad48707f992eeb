package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Port 待ち受けポート（固定値、環境変数からは変更できない）
const Port = 3000

// Config サーバー起動時の設定
type Config struct {
	GinMode        string
	TrustedProxies []string
}

// Addr http.Serverに渡すアドレス
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", Port)
}

// Load .envファイル（任意）と環境変数から設定を読み込む
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		GinMode:        gin.DebugMode,
		TrustedProxies: splitList(os.Getenv("TRUSTED_PROXIES")),
	}

	if mode := strings.TrimSpace(os.Getenv(gin.EnvGinMode)); mode != "" {
		switch mode {
		case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
			cfg.GinMode = mode
		default:
			return nil, fmt.Errorf("%s の値が不正です: %q", gin.EnvGinMode, mode)
		}
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
