// Package config は環境変数からアプリケーションの設定を読み込みます
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

// Config はアプリケーション全体の設定です
type Config struct {
	Server  ServerConfig  `envPrefix:"SERVER_"`
	Catalog CatalogConfig `envPrefix:"CATALOG_"`
	Log     LogConfig     `envPrefix:"LOG_"`
}

// ServerConfig はHTTPサーバーの設定です
type ServerConfig struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port string `env:"PORT" envDefault:"8080" validate:"required,numeric"`
}

// CatalogConfig はカタログデータと表示の設定です
type CatalogConfig struct {
	DataPath string `env:"DATA_PATH" envDefault:"public/assets/js/data.js" validate:"required"`
	PageSize int    `env:"PAGE_SIZE" envDefault:"12" validate:"gte=1,lte=100"`
	Locale   string `env:"LOCALE" envDefault:"es" validate:"required,bcp47_language_tag"`
}

// LogConfig はロガーの設定です
type LogConfig struct {
	Level       string `env:"LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Development bool   `env:"DEVELOPMENT" envDefault:"false"`
}

// Addr はサーバーの待ち受けアドレスを返します
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// LocaleTag はカテゴリの並び替えに使う言語タグを返します
func (c CatalogConfig) LocaleTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Spanish
	}
	return tag
}

// Load は環境変数から設定を読み込み、検証して返します
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// PaaS などで使われる PORT も受け付ける
	if _, ok := os.LookupEnv("SERVER_PORT"); !ok {
		if port := os.Getenv("PORT"); port != "" {
			cfg.Server.Port = port
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
