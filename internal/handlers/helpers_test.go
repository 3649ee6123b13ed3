package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/codebyjossaya/vt-backend/internal/identity"
	"github.com/codebyjossaya/vt-backend/internal/models"
	"github.com/codebyjossaya/vt-backend/internal/token"
)

// --- Mock VaultTokenCodec --- //

type MockCodec struct {
	mock.Mock
}

func (m *MockCodec) Mint(ownerSubjectID string) (string, string, error) {
	args := m.Called(ownerSubjectID)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockCodec) Verify(signed string) (*token.Claims, error) {
	args := m.Called(signed)
	claims, _ := args.Get(0).(*token.Claims)
	return claims, args.Error(1)
}

// --- Mock identity.Provider --- //

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) VerifyIDToken(ctx context.Context, raw string) (*identity.Identity, error) {
	args := m.Called(ctx, raw)
	ident, _ := args.Get(0).(*identity.Identity)
	return ident, args.Error(1)
}

func (m *MockProvider) GetUser(ctx context.Context, subjectID string) (*identity.Identity, error) {
	args := m.Called(ctx, subjectID)
	ident, _ := args.Get(0).(*identity.Identity)
	return ident, args.Error(1)
}

func (m *MockProvider) GetUserByEmail(ctx context.Context, email string) (*identity.Identity, error) {
	args := m.Called(ctx, email)
	ident, _ := args.Get(0).(*identity.Identity)
	return ident, args.Error(1)
}

// --- Mock MembershipService --- //

type MockMembershipService struct {
	mock.Mock
}

func (m *MockMembershipService) RegisterVault(ctx context.Context, vaultID, ownerSubjectID, vaultName, tunnelURL string) error {
	args := m.Called(ctx, vaultID, ownerSubjectID, vaultName, tunnelURL)
	return args.Error(0)
}

func (m *MockMembershipService) UnregisterVault(ctx context.Context, vaultID, subjectID string) error {
	args := m.Called(ctx, vaultID, subjectID)
	return args.Error(0)
}

func (m *MockMembershipService) SetVaultStatus(ctx context.Context, vaultID, status string) error {
	args := m.Called(ctx, vaultID, status)
	return args.Error(0)
}

func (m *MockMembershipService) ListUserVaults(ctx context.Context, subjectID string) ([]models.VaultSummary, error) {
	args := m.Called(ctx, subjectID)
	vaults, _ := args.Get(0).([]models.VaultSummary)
	return vaults, args.Error(1)
}

func (m *MockMembershipService) GetVault(ctx context.Context, vaultID, requesterSubjectID string) (*models.Vault, error) {
	args := m.Called(ctx, vaultID, requesterSubjectID)
	vault, _ := args.Get(0).(*models.Vault)
	return vault, args.Error(1)
}

func (m *MockMembershipService) VerifyMembership(ctx context.Context, vaultID, subjectID string) (bool, error) {
	args := m.Called(ctx, vaultID, subjectID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMembershipService) ListVaultUsers(ctx context.Context, vaultID string) ([]identity.Identity, error) {
	args := m.Called(ctx, vaultID)
	users, _ := args.Get(0).([]identity.Identity)
	return users, args.Error(1)
}

func (m *MockMembershipService) InviteUser(ctx context.Context, vaultID, inviterSubjectID, inviteeEmail string) error {
	args := m.Called(ctx, vaultID, inviterSubjectID, inviteeEmail)
	return args.Error(0)
}

func (m *MockMembershipService) ListRequests(ctx context.Context, subjectID string) ([]models.PendingRequest, error) {
	args := m.Called(ctx, subjectID)
	requests, _ := args.Get(0).([]models.PendingRequest)
	return requests, args.Error(1)
}

func (m *MockMembershipService) ResolveRequest(ctx context.Context, vaultID, subjectID, action string) error {
	args := m.Called(ctx, vaultID, subjectID, action)
	return args.Error(0)
}

// --- Helpers --- //

// performRequest выполняет POST-запрос к роутеру и возвращает рекордер.
func performRequest(t *testing.T, router *chi.Mux, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// decodeEnvelope разбирает JSON-конверт ответа.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	return envelope
}
