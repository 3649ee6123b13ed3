package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

const defaultTimeout = 10 * time.Second

// Config содержит параметры подключения к REST API провайдера личностей.
type Config struct {
	BaseURL string // Адрес API провайдера (например, "https://identity.example.com")
	APIKey  string // Сервисный ключ для заголовка Authorization
}

// HTTPProvider реализует Provider поверх REST API провайдера личностей.
type HTTPProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// Убедимся, что HTTPProvider удовлетворяет интерфейсу Provider.
var _ Provider = (*HTTPProvider)(nil)

// NewHTTPProvider создает клиент провайдера личностей.
func NewHTTPProvider(cfg Config) *HTTPProvider {
	return &HTTPProvider{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

// VerifyIDToken проверяет пользовательский токен у провайдера.
func (p *HTTPProvider) VerifyIDToken(ctx context.Context, rawToken string) (*Identity, error) {
	body, err := json.Marshal(map[string]string{"token": rawToken})
	if err != nil {
		return nil, fmt.Errorf("ошибка кодирования запроса проверки токена: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/v1/token/verify", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса проверки токена: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return p.do(req, ErrInvalidIdentity)
}

// GetUser возвращает профиль пользователя по subject_id.
func (p *HTTPProvider) GetUser(ctx context.Context, subjectID string) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		p.baseURL+"/v1/users/"+url.PathEscape(subjectID), nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса профиля: %w", err)
	}

	return p.do(req, ErrUserNotFound)
}

// GetUserByEmail возвращает профиль пользователя по email.
func (p *HTTPProvider) GetUserByEmail(ctx context.Context, email string) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		p.baseURL+"/v1/users?email="+url.QueryEscape(email), nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса поиска по email: %w", err)
	}

	return p.do(req, ErrUserNotFound)
}

// do выполняет запрос к провайдеру. Статусы 400/401/404 транслируются
// в rejection (ошибка контракта), остальные неуспехи - в ошибку I/O.
func (p *HTTPProvider) do(req *http.Request, rejection error) (*Identity, error) {
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		log.Printf("[IdentityProvider] Ошибка запроса к провайдеру %s: %v", req.URL.Path, err)
		return nil, fmt.Errorf("ошибка запроса к провайдеру личностей: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("[IdentityProvider] Ошибка закрытия тела ответа: %v", closeErr)
		}
	}()

	switch resp.StatusCode {
	case http.StatusOK:
		var ident Identity
		if decErr := json.NewDecoder(resp.Body).Decode(&ident); decErr != nil {
			return nil, fmt.Errorf("ошибка декодирования ответа провайдера: %w", decErr)
		}
		if ident.SubjectID == "" {
			return nil, fmt.Errorf("провайдер вернул личность без subject_id")
		}
		return &ident, nil
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound:
		log.Printf("[IdentityProvider] Провайдер отклонил запрос %s: статус %d", req.URL.Path, resp.StatusCode)
		return nil, rejection
	default:
		return nil, fmt.Errorf("провайдер личностей вернул статус %d", resp.StatusCode)
	}
}
