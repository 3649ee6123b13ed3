package models

// Тела запросов внешнего API. Токены передаются именованными полями
// тела, а не заголовком Authorization - таков контракт агентов.

// MintTokenRequest - запрос на выпуск токена хранилища.
type MintTokenRequest struct {
	UserToken string `json:"user_token"`
}

// VerifyTokenRequest - запрос на проверку токена хранилища.
type VerifyTokenRequest struct {
	VaultToken string `json:"vault_token"`
}

// VerifyUserRequest - запрос хранилища на проверку членства пользователя.
type VerifyUserRequest struct {
	UserToken  string `json:"user_token"`
	VaultToken string `json:"vault_token"`
}

// StatusRequest - запрос хранилища на обновление своего статуса.
type StatusRequest struct {
	VaultToken string `json:"vault_token"`
	Status     string `json:"status"`
}

// RegisterRequest - запрос на регистрацию хранилища.
type RegisterRequest struct {
	Token     string `json:"token"`
	VaultName string `json:"vault_name"`
	TunnelURL string `json:"tunnel_url"`
}

// UnregisterRequest - запрос пользователя на выход из хранилища.
type UnregisterRequest struct {
	UserToken string `json:"user_token"`
	VaultID   string `json:"vault_id"`
}

// UserTokenRequest - запросы, требующие только токен пользователя
// (список хранилищ, список заявок).
type UserTokenRequest struct {
	UserToken string `json:"user_token"`
}

// ConnectRequest - запрос пользователя на получение данных хранилища.
type ConnectRequest struct {
	UserToken string `json:"user_token"`
	VaultID   string `json:"vault_id"`
}

// AddUserRequest - запрос хранилища на приглашение пользователя по email.
type AddUserRequest struct {
	VaultToken string `json:"vault_token"`
	UserEmail  string `json:"user_email"`
}

// HandleRequestRequest - запрос пользователя на принятие/отклонение заявки.
type HandleRequestRequest struct {
	UserToken string `json:"user_token"`
	VaultID   string `json:"vault_id"`
	Action    string `json:"action"`
}
