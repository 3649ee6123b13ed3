package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

const (
	// Порт по умолчанию для HTTPS (непривилегированный).
	defaultServerPort = "8443"

	// Переменные окружения.
	envServerPort     = "SERVER_PORT"
	envTLSCertFile    = "TLS_CERT_FILE"
	envTLSKeyFile     = "TLS_KEY_FILE"
	envDatabaseDSN    = "DATABASE_DSN"
	envSigningKeyFile = "VAULT_SIGNING_KEY_FILE"
	envIdentityURL    = "IDENTITY_PROVIDER_URL"
	envIdentityAPIKey = "IDENTITY_PROVIDER_API_KEY" //nolint:gosec // Имя переменной окружения, не сам ключ
)

// config хранит конфигурацию сервера.
type config struct {
	Port           string
	CertFile       string
	KeyFile        string
	DatabaseDSN    string
	SigningKeyFile string
	IdentityURL    string
	IdentityAPIKey string
}

// parseFlags разбирает флаги и переменные окружения, возвращает config или ошибку.
// Флаги имеют приоритет над переменными окружения.
func parseFlags() (*config, error) {
	cfg := &config{}

	// Определяем флаги
	flag.StringVar(&cfg.Port, "port", "",
		fmt.Sprintf("Порт для запуска HTTPS-сервера (env: %s, default: %s)", envServerPort, defaultServerPort))
	flag.StringVar(&cfg.CertFile, "cert-file", "",
		fmt.Sprintf("Путь к файлу TLS-сертификата (env: %s)", envTLSCertFile))
	flag.StringVar(&cfg.KeyFile, "key-file", "",
		fmt.Sprintf("Путь к файлу TLS-ключа (env: %s)", envTLSKeyFile))
	flag.StringVar(&cfg.DatabaseDSN, "database-dsn", "",
		fmt.Sprintf("Строка подключения к базе данных (env: %s)", envDatabaseDSN))
	flag.StringVar(&cfg.SigningKeyFile, "signing-key-file", "",
		fmt.Sprintf("Путь к приватному RSA-ключу подписи токенов хранилищ (env: %s)", envSigningKeyFile))
	flag.StringVar(&cfg.IdentityURL, "identity-url", "",
		fmt.Sprintf("Базовый URL провайдера личностей (env: %s)", envIdentityURL))
	flag.StringVar(&cfg.IdentityAPIKey, "identity-api-key", "",
		fmt.Sprintf("API-ключ провайдера личностей (env: %s)", envIdentityAPIKey))

	// Парсим флаги
	flag.Parse()

	// Применяем переменные окружения, если флаги не заданы
	if cfg.Port == "" {
		if value, ok := os.LookupEnv(envServerPort); ok {
			cfg.Port = value
		} else {
			cfg.Port = defaultServerPort
		}
	}
	if cfg.CertFile == "" {
		if value, ok := os.LookupEnv(envTLSCertFile); ok {
			cfg.CertFile = value
		}
	}
	if cfg.KeyFile == "" {
		if value, ok := os.LookupEnv(envTLSKeyFile); ok {
			cfg.KeyFile = value
		}
	}
	if cfg.DatabaseDSN == "" {
		if value, ok := os.LookupEnv(envDatabaseDSN); ok {
			cfg.DatabaseDSN = value
		}
	}
	if cfg.SigningKeyFile == "" {
		if value, ok := os.LookupEnv(envSigningKeyFile); ok {
			cfg.SigningKeyFile = value
		}
	}
	if cfg.IdentityURL == "" {
		if value, ok := os.LookupEnv(envIdentityURL); ok {
			cfg.IdentityURL = value
		}
	}
	if cfg.IdentityAPIKey == "" {
		if value, ok := os.LookupEnv(envIdentityAPIKey); ok {
			cfg.IdentityAPIKey = value
		}
	}

	// Проверяем обязательные параметры
	if cfg.CertFile == "" {
		return nil, errors.New("не указан путь к файлу сертификата (--cert-file или " + envTLSCertFile + ")")
	}
	if cfg.KeyFile == "" {
		return nil, errors.New("не указан путь к файлу ключа (--key-file или " + envTLSKeyFile + ")")
	}
	if cfg.DatabaseDSN == "" {
		return nil, errors.New("не указана строка подключения к БД (--database-dsn или " + envDatabaseDSN + ")")
	}
	if cfg.SigningKeyFile == "" {
		return nil, errors.New("не указан путь к ключу подписи токенов (--signing-key-file или " + envSigningKeyFile + ")")
	}
	if cfg.IdentityURL == "" {
		return nil, errors.New("не указан URL провайдера личностей (--identity-url или " + envIdentityURL + ")")
	}

	return cfg, nil
}
