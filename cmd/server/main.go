package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // Драйвер PostgreSQL

	"github.com/codebyjossaya/vt-backend/internal/handlers"
	"github.com/codebyjossaya/vt-backend/internal/identity"
	"github.com/codebyjossaya/vt-backend/internal/repository"
	"github.com/codebyjossaya/vt-backend/internal/services"
	"github.com/codebyjossaya/vt-backend/internal/token"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 30 * time.Second
	corsMaxAge          = 300
)

// newPostgresDB выделена в переменную для подмены в тестах.
var newPostgresDB = repository.NewPostgresDB

// Структура для хранения инициализированных зависимостей.
type dependencies struct {
	db             *sqlx.DB
	authHandler    *handlers.AuthHandler
	vaultHandler   *handlers.VaultHandler
	requestHandler *handlers.RequestHandler
}

// main - точка входа. Вызывает run и обрабатывает ошибку.
func main() {
	if err := run(); err != nil {
		log.Printf("Ошибка выполнения сервера: %v", err)
		os.Exit(1)
	}
}

// run содержит основную логику запуска сервера и возвращает ошибку.
func run() error {
	log.Println("Запуск сервера VaultTune...")

	cfg, err := parseFlags()
	if err != nil {
		return fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	// Инициализация зависимостей
	deps, err := setupDependencies(cfg)
	if err != nil {
		return fmt.Errorf("ошибка инициализации зависимостей: %w", err)
	}
	// Отложенное закрытие соединения с БД
	defer func() {
		if deps.db != nil {
			if closeErr := deps.db.Close(); closeErr != nil {
				log.Printf("Ошибка закрытия соединения с БД: %v", closeErr)
			}
		}
	}()

	// Настройка роутера
	r := setupRouter(deps.authHandler, deps.vaultHandler, deps.requestHandler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	log.Printf("Запуск HTTPS-сервера на порту %s...", cfg.Port)
	log.Printf("Используется сертификат: %s", cfg.CertFile)
	log.Printf("Используется ключ: %s", cfg.KeyFile)

	// Запускаем сервер с TLS
	if err = server.ListenAndServeTLS(cfg.CertFile, cfg.KeyFile); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ошибка запуска HTTPS-сервера: %w", err)
	}
	return nil
}

// setupDependencies инициализирует и возвращает все необходимые зависимости сервера.
func setupDependencies(cfg *config) (*dependencies, error) {
	deps := &dependencies{}
	var err error

	// 1. Подключение к БД
	deps.db, err = newPostgresDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации БД: %w", err)
	}
	log.Println("Соединение с БД успешно установлено.")

	// 2. Кодек токенов хранилищ: приватный RSA-ключ из PEM-файла
	keyPEM, err := os.ReadFile(cfg.SigningKeyFile)
	if err != nil {
		closeDB(deps.db)
		return nil, fmt.Errorf("ошибка чтения ключа подписи %s: %w", cfg.SigningKeyFile, err)
	}
	codec, err := token.NewCodecFromPEM(keyPEM)
	if err != nil {
		closeDB(deps.db)
		return nil, fmt.Errorf("ошибка разбора ключа подписи: %w", err)
	}
	log.Printf("Ключ подписи токенов загружен из %s", cfg.SigningKeyFile)

	// 3. Клиент провайдера личностей
	provider := identity.NewHTTPProvider(identity.Config{
		BaseURL: cfg.IdentityURL,
		APIKey:  cfg.IdentityAPIKey,
	})

	// 4. Репозитории
	vaultRepo := repository.NewPostgresVaultRepository(deps.db)
	requestRepo := repository.NewPostgresRequestRepository(deps.db)

	// 5. Сервисы
	membership := services.NewMembershipService(vaultRepo, requestRepo, provider)

	// 6. Обработчики
	deps.authHandler = handlers.NewAuthHandler(codec, provider, membership)
	deps.vaultHandler = handlers.NewVaultHandler(codec, provider, membership)
	deps.requestHandler = handlers.NewRequestHandler(codec, provider, membership)

	return deps, nil
}

// setupRouter настраивает и возвращает роутер chi.
func setupRouter(
	authHandler *handlers.AuthHandler,
	vaultHandler *handlers.VaultHandler,
	requestHandler *handlers.RequestHandler,
) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         corsMaxAge,
	}))

	// --- Маршруты --- //
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong\n"))
	})

	r.Route("/vaulttune", func(r chi.Router) {
		// Маршруты выпуска и проверки токенов
		r.Route("/auth/vault", func(r chi.Router) {
			r.Post("/getToken", authHandler.GetToken)
			r.Post("/verifyToken", authHandler.VerifyToken)
			r.Post("/verifyUser", authHandler.VerifyUser)
		})

		// Маршруты агента хранилища: аутентификация токеном хранилища
		r.Route("/vault", func(r chi.Router) {
			r.Post("/status", vaultHandler.Status)
			r.Post("/getUsers", vaultHandler.GetUsers)
		})

		// Маршруты пользователя: аутентификация токеном провайдера
		r.Route("/user", func(r chi.Router) {
			r.Post("/vaults/get", vaultHandler.ListVaults)
			r.Route("/vault", func(r chi.Router) {
				r.Post("/register", vaultHandler.Register)
				r.Post("/unregister", vaultHandler.Unregister)
				r.Post("/connect", vaultHandler.Connect)
				r.Post("/addUser", requestHandler.AddUser)
				r.Post("/requests", requestHandler.Requests)
				r.Post("/handleRequest", requestHandler.HandleRequest)
			})
		})
	})
	return r
}

// closeDB закрывает соединение с БД при ошибке инициализации.
func closeDB(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("Ошибка закрытия соединения с БД: %v", err)
	}
}
