// Package config предоставляет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// MinTokenKeyBytes минимальная длина ключа подписи для HMAC-SHA-512.
const MinTokenKeyBytes = 32

// Config общая структура для хранения настроек
type Config struct {
	Env                     string `yaml:"env" env:"ENV" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING"`
	MigrationsPath          string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"./migrations"`
	HTTPServer              `yaml:"http_server"`
	TokenKey                string `yaml:"token_key" env:"TOKEN_KEY"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:"localhost:8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// MustLoad загружает конфиг по пути из CONFIG_PATH и валидирует его.
// Любая ошибка конфигурации фатальна: сервис не должен стартовать
// с отсутствующим или коротким ключом подписи, чтобы не падать
// на первом же запросе.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %s", err)
	}
	return &cfg
}

// Validate проверяет обязательные поля конфига.
// Ключ подписи обязан иметь не менее 32 байт: HMAC-SHA-512 с более
// коротким ключом формально работает, но теряет криптографический запас.
func (c *Config) Validate() error {
	if c.StorageConnectionString == "" {
		return fmt.Errorf("storage_connection_string is required")
	}
	if c.TokenKey == "" {
		return fmt.Errorf("token_key is required")
	}
	if len(c.TokenKey) < MinTokenKeyBytes {
		return fmt.Errorf("token_key is too short: got %d bytes, need at least %d", len(c.TokenKey), MinTokenKeyBytes)
	}
	return nil
}
