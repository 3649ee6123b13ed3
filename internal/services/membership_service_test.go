package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codebyjossaya/vt-backend/internal/identity"
	"github.com/codebyjossaya/vt-backend/internal/mocks"
	"github.com/codebyjossaya/vt-backend/internal/models"
	"github.com/codebyjossaya/vt-backend/internal/repository"
	"github.com/codebyjossaya/vt-backend/internal/services"
)

func newService(t *testing.T) (services.MembershipService, *mocks.VaultRepository, *mocks.RequestRepository, *mocks.Provider) {
	t.Helper()
	vaultRepo := mocks.NewVaultRepository(t)
	requestRepo := mocks.NewRequestRepository(t)
	provider := mocks.NewProvider(t)
	svc := services.NewMembershipService(vaultRepo, requestRepo, provider)
	return svc, vaultRepo, requestRepo, provider
}

func TestNewMembershipService(t *testing.T) {
	svc, _, _, _ := newService(t)
	require.NotNil(t, svc)
}

func TestRegisterVault(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		vaultName     string
		tunnelURL     string
		mockSetup     func(vaultRepo *mocks.VaultRepository)
		expectedError error
	}{
		{
			name:      "Успешная регистрация",
			vaultName: "Home",
			tunnelURL: "https://tunnel.example",
			mockSetup: func(vaultRepo *mocks.VaultRepository) {
				vaultRepo.EXPECT().
					RegisterVault(ctx, "vault_abc123xyz", "alice", "Home", "https://tunnel.example").
					Return(nil).Once()
			},
			expectedError: nil,
		},
		{
			name:          "Пустое имя хранилища",
			vaultName:     "",
			tunnelURL:     "https://tunnel.example",
			mockSetup:     func(_ *mocks.VaultRepository) {},
			expectedError: services.ErrInvalidInput,
		},
		{
			name:          "Пустой адрес туннеля",
			vaultName:     "Home",
			tunnelURL:     "",
			mockSetup:     func(_ *mocks.VaultRepository) {},
			expectedError: services.ErrInvalidInput,
		},
		{
			name:      "Ошибка хранилища данных",
			vaultName: "Home",
			tunnelURL: "https://tunnel.example",
			mockSetup: func(vaultRepo *mocks.VaultRepository) {
				vaultRepo.EXPECT().
					RegisterVault(ctx, "vault_abc123xyz", "alice", "Home", "https://tunnel.example").
					Return(errors.New("connection refused")).Once()
			},
			expectedError: services.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, vaultRepo, _, _ := newService(t)
			tt.mockSetup(vaultRepo)

			err := svc.RegisterVault(ctx, "vault_abc123xyz", "alice", tt.vaultName, tt.tunnelURL)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUnregisterVault(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		mockSetup     func(vaultRepo *mocks.VaultRepository)
		expectedError error
	}{
		{
			name: "Выход участника, хранилище остается",
			mockSetup: func(vaultRepo *mocks.VaultRepository) {
				vaultRepo.EXPECT().
					UnregisterVault(ctx, "vault_abc123xyz", "alice").
					Return(false, nil).Once()
			},
		},
		{
			name: "Выход последнего участника, хранилище удалено",
			mockSetup: func(vaultRepo *mocks.VaultRepository) {
				vaultRepo.EXPECT().
					UnregisterVault(ctx, "vault_abc123xyz", "alice").
					Return(true, nil).Once()
			},
		},
		{
			name: "Хранилище не найдено",
			mockSetup: func(vaultRepo *mocks.VaultRepository) {
				vaultRepo.EXPECT().
					UnregisterVault(ctx, "vault_abc123xyz", "alice").
					Return(false, repository.ErrVaultNotFound).Once()
			},
			expectedError: services.ErrVaultNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, vaultRepo, _, _ := newService(t)
			tt.mockSetup(vaultRepo)

			err := svc.UnregisterVault(ctx, "vault_abc123xyz", "alice")

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSetVaultStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		status        string
		mockSetup     func(vaultRepo *mocks.VaultRepository)
		expectedError error
	}{
		{
			name:   "Статус online",
			status: models.StatusOnline,
			mockSetup: func(vaultRepo *mocks.VaultRepository) {
				vaultRepo.EXPECT().
					SetStatus(ctx, "vault_abc123xyz", models.StatusOnline).
					Return(nil).Once()
			},
		},
		{
			name:          "Недопустимый статус",
			status:        "exploded",
			mockSetup:     func(_ *mocks.VaultRepository) {},
			expectedError: services.ErrInvalidInput,
		},
		{
			name:   "Хранилище не найдено - fail-fast, не no-op",
			status: models.StatusOffline,
			mockSetup: func(vaultRepo *mocks.VaultRepository) {
				vaultRepo.EXPECT().
					SetStatus(ctx, "vault_abc123xyz", models.StatusOffline).
					Return(repository.ErrVaultNotFound).Once()
			},
			expectedError: services.ErrVaultNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, vaultRepo, _, _ := newService(t)
			tt.mockSetup(vaultRepo)

			err := svc.SetVaultStatus(ctx, "vault_abc123xyz", tt.status)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestGetVault(t *testing.T) {
	ctx := context.Background()
	vault := &models.Vault{
		ID:        "vault_abc123xyz",
		VaultName: "Home",
		TunnelURL: "https://tunnel.example",
		Status:    models.StatusOnline,
		Users:     []string{"alice", "bob"},
	}

	t.Run("Участник получает запись", func(t *testing.T) {
		svc, vaultRepo, _, _ := newService(t)
		vaultRepo.EXPECT().GetVault(ctx, vault.ID).Return(vault, nil).Once()

		got, err := svc.GetVault(ctx, vault.ID, "alice")
		require.NoError(t, err)
		assert.Equal(t, vault, got)
	})

	t.Run("Не участник получает отказ", func(t *testing.T) {
		svc, vaultRepo, _, _ := newService(t)
		vaultRepo.EXPECT().GetVault(ctx, vault.ID).Return(vault, nil).Once()

		_, err := svc.GetVault(ctx, vault.ID, "mallory")
		require.ErrorIs(t, err, services.ErrNotAuthorized)
	})

	t.Run("Хранилище не найдено", func(t *testing.T) {
		svc, vaultRepo, _, _ := newService(t)
		vaultRepo.EXPECT().GetVault(ctx, vault.ID).Return(nil, repository.ErrVaultNotFound).Once()

		_, err := svc.GetVault(ctx, vault.ID, "alice")
		require.ErrorIs(t, err, services.ErrVaultNotFound)
	})
}

func TestVerifyMembership(t *testing.T) {
	ctx := context.Background()

	t.Run("Участник", func(t *testing.T) {
		svc, vaultRepo, _, _ := newService(t)
		vaultRepo.EXPECT().IsMember(ctx, "vault_abc123xyz", "alice").Return(true, nil).Once()

		ok, err := svc.VerifyMembership(ctx, "vault_abc123xyz", "alice")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Не участник", func(t *testing.T) {
		svc, vaultRepo, _, _ := newService(t)
		vaultRepo.EXPECT().IsMember(ctx, "vault_abc123xyz", "mallory").Return(false, nil).Once()

		ok, err := svc.VerifyMembership(ctx, "vault_abc123xyz", "mallory")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Хранилище не найдено", func(t *testing.T) {
		svc, vaultRepo, _, _ := newService(t)
		vaultRepo.EXPECT().IsMember(ctx, "vault_abc123xyz", "alice").
			Return(false, repository.ErrVaultNotFound).Once()

		_, err := svc.VerifyMembership(ctx, "vault_abc123xyz", "alice")
		require.ErrorIs(t, err, services.ErrVaultNotFound)
	})
}

func TestListUserVaults(t *testing.T) {
	ctx := context.Background()

	t.Run("Список с деградировавшим элементом", func(t *testing.T) {
		svc, vaultRepo, _, _ := newService(t)
		summaries := []models.VaultSummary{
			{ID: "vault_abc123xyz", VaultName: "Home", Status: models.StatusOnline},
			{ID: "vault_zzz999aaa", VaultName: "Old", Status: models.StatusNotFound},
		}
		vaultRepo.EXPECT().ListUserVaults(ctx, "alice").Return(summaries, nil).Once()

		got, err := svc.ListUserVaults(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, summaries, got)
	})

	t.Run("Пустой список - не ошибка", func(t *testing.T) {
		svc, vaultRepo, _, _ := newService(t)
		vaultRepo.EXPECT().ListUserVaults(ctx, "alice").Return([]models.VaultSummary{}, nil).Once()

		got, err := svc.ListUserVaults(ctx, "alice")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestListVaultUsers(t *testing.T) {
	ctx := context.Background()
	vault := &models.Vault{ID: "vault_abc123xyz", VaultName: "Home", Users: []string{"alice", "bob"}}

	t.Run("Профили всех участников", func(t *testing.T) {
		svc, vaultRepo, _, provider := newService(t)
		vaultRepo.EXPECT().GetVault(ctx, vault.ID).Return(vault, nil).Once()
		provider.EXPECT().GetUser(ctx, "alice").
			Return(&identity.Identity{SubjectID: "alice", Email: "alice@example.com"}, nil).Once()
		provider.EXPECT().GetUser(ctx, "bob").
			Return(&identity.Identity{SubjectID: "bob", Email: "bob@example.com"}, nil).Once()

		users, err := svc.ListVaultUsers(ctx, vault.ID)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "alice", users[0].SubjectID)
		assert.Equal(t, "bob", users[1].SubjectID)
	})

	t.Run("Ошибка провайдера проваливает вызов", func(t *testing.T) {
		svc, vaultRepo, _, provider := newService(t)
		vaultRepo.EXPECT().GetVault(ctx, vault.ID).Return(vault, nil).Once()
		provider.EXPECT().GetUser(ctx, "alice").
			Return(nil, errors.New("provider down")).Once()

		_, err := svc.ListVaultUsers(ctx, vault.ID)
		require.Error(t, err)
	})
}

func TestInviteUser(t *testing.T) {
	ctx := context.Background()
	vault := &models.Vault{ID: "vault_abc123xyz", VaultName: "Home", Users: []string{"alice"}}
	bob := &identity.Identity{SubjectID: "bob", Email: "bob@example.com"}

	tests := []struct {
		name          string
		email         string
		mockSetup     func(vaultRepo *mocks.VaultRepository, requestRepo *mocks.RequestRepository, provider *mocks.Provider)
		expectedError error
	}{
		{
			name:  "Успешное приглашение",
			email: "bob@example.com",
			mockSetup: func(vaultRepo *mocks.VaultRepository, requestRepo *mocks.RequestRepository, provider *mocks.Provider) {
				provider.EXPECT().GetUserByEmail(ctx, "bob@example.com").Return(bob, nil).Once()
				vaultRepo.EXPECT().GetVault(ctx, vault.ID).Return(vault, nil).Once()
				requestRepo.EXPECT().
					CreateRequest(ctx, &models.PendingRequest{
						VaultID:        vault.ID,
						SubjectID:      "bob",
						OwnerSubjectID: "alice",
						VaultName:      "Home",
					}).
					Return(nil).Once()
			},
		},
		{
			name:          "Пустой email",
			email:         "",
			mockSetup:     func(_ *mocks.VaultRepository, _ *mocks.RequestRepository, _ *mocks.Provider) {},
			expectedError: services.ErrInvalidInput,
		},
		{
			name:  "Email не зарегистрирован",
			email: "nobody@example.com",
			mockSetup: func(_ *mocks.VaultRepository, _ *mocks.RequestRepository, provider *mocks.Provider) {
				provider.EXPECT().GetUserByEmail(ctx, "nobody@example.com").
					Return(nil, identity.ErrUserNotFound).Once()
			},
			expectedError: services.ErrUserNotFound,
		},
		{
			name:  "Приглашаемый уже участник",
			email: "alice@example.com",
			mockSetup: func(vaultRepo *mocks.VaultRepository, _ *mocks.RequestRepository, provider *mocks.Provider) {
				provider.EXPECT().GetUserByEmail(ctx, "alice@example.com").
					Return(&identity.Identity{SubjectID: "alice"}, nil).Once()
				vaultRepo.EXPECT().GetVault(ctx, vault.ID).Return(vault, nil).Once()
			},
			expectedError: services.ErrAlreadyMember,
		},
		{
			name:  "Хранилище не найдено",
			email: "bob@example.com",
			mockSetup: func(vaultRepo *mocks.VaultRepository, _ *mocks.RequestRepository, provider *mocks.Provider) {
				provider.EXPECT().GetUserByEmail(ctx, "bob@example.com").Return(bob, nil).Once()
				vaultRepo.EXPECT().GetVault(ctx, vault.ID).
					Return(nil, repository.ErrVaultNotFound).Once()
			},
			expectedError: services.ErrVaultNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, vaultRepo, requestRepo, provider := newService(t)
			tt.mockSetup(vaultRepo, requestRepo, provider)

			err := svc.InviteUser(ctx, vault.ID, "alice", tt.email)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestResolveRequest(t *testing.T) {
	ctx := context.Background()
	pending := &models.PendingRequest{
		VaultID:        "vault_abc123xyz",
		SubjectID:      "bob",
		OwnerSubjectID: "alice",
		VaultName:      "Home",
		Status:         models.RequestPending,
	}

	tests := []struct {
		name          string
		action        string
		mockSetup     func(vaultRepo *mocks.VaultRepository, requestRepo *mocks.RequestRepository)
		expectedError error
	}{
		{
			name:   "Принятие заявки",
			action: models.ActionAccept,
			mockSetup: func(vaultRepo *mocks.VaultRepository, requestRepo *mocks.RequestRepository) {
				vaultRepo.EXPECT().IsMember(ctx, "vault_abc123xyz", "bob").Return(false, nil).Once()
				requestRepo.EXPECT().GetPendingRequest(ctx, "vault_abc123xyz", "bob").
					Return(pending, nil).Once()
				requestRepo.EXPECT().AcceptRequest(ctx, "vault_abc123xyz", "bob").Return(nil).Once()
			},
		},
		{
			name:   "Отклонение заявки",
			action: models.ActionReject,
			mockSetup: func(vaultRepo *mocks.VaultRepository, requestRepo *mocks.RequestRepository) {
				vaultRepo.EXPECT().IsMember(ctx, "vault_abc123xyz", "bob").Return(false, nil).Once()
				requestRepo.EXPECT().GetPendingRequest(ctx, "vault_abc123xyz", "bob").
					Return(pending, nil).Once()
				requestRepo.EXPECT().RejectRequest(ctx, "vault_abc123xyz", "bob").Return(nil).Once()
			},
		},
		{
			name:          "Недопустимое действие",
			action:        "maybe",
			mockSetup:     func(_ *mocks.VaultRepository, _ *mocks.RequestRepository) {},
			expectedError: services.ErrInvalidInput,
		},
		{
			name:   "Хранилище не найдено",
			action: models.ActionAccept,
			mockSetup: func(vaultRepo *mocks.VaultRepository, _ *mocks.RequestRepository) {
				vaultRepo.EXPECT().IsMember(ctx, "vault_abc123xyz", "bob").
					Return(false, repository.ErrVaultNotFound).Once()
			},
			expectedError: services.ErrVaultNotFound,
		},
		{
			// Повторное разрешение уже принятой заявки: пользователь уже
			// участник, но заявка больше не pending - ожидаем NotFound.
			name:   "Заявка уже обработана",
			action: models.ActionReject,
			mockSetup: func(vaultRepo *mocks.VaultRepository, requestRepo *mocks.RequestRepository) {
				vaultRepo.EXPECT().IsMember(ctx, "vault_abc123xyz", "bob").Return(true, nil).Once()
				requestRepo.EXPECT().GetPendingRequest(ctx, "vault_abc123xyz", "bob").
					Return(nil, repository.ErrRequestNotFound).Once()
			},
			expectedError: services.ErrRequestNotFound,
		},
		{
			name:   "Участник с висящей заявкой",
			action: models.ActionAccept,
			mockSetup: func(vaultRepo *mocks.VaultRepository, requestRepo *mocks.RequestRepository) {
				vaultRepo.EXPECT().IsMember(ctx, "vault_abc123xyz", "bob").Return(true, nil).Once()
				requestRepo.EXPECT().GetPendingRequest(ctx, "vault_abc123xyz", "bob").
					Return(pending, nil).Once()
			},
			expectedError: services.ErrAlreadyMember,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, vaultRepo, requestRepo, _ := newService(t)
			tt.mockSetup(vaultRepo, requestRepo)

			err := svc.ResolveRequest(ctx, "vault_abc123xyz", "bob", tt.action)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestListRequests(t *testing.T) {
	ctx := context.Background()

	t.Run("Пустой список - не ошибка", func(t *testing.T) {
		svc, _, requestRepo, _ := newService(t)
		requestRepo.EXPECT().ListPendingRequests(ctx, "bob").
			Return([]models.PendingRequest{}, nil).Once()

		got, err := svc.ListRequests(ctx, "bob")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Заявки пользователя", func(t *testing.T) {
		svc, _, requestRepo, _ := newService(t)
		requests := []models.PendingRequest{{
			VaultID:   "vault_abc123xyz",
			SubjectID: "bob",
			VaultName: "Home",
			Status:    models.RequestPending,
		}}
		requestRepo.EXPECT().ListPendingRequests(ctx, "bob").Return(requests, nil).Once()

		got, err := svc.ListRequests(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, requests, got)
	})
}
