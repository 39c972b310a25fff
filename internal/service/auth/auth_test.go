package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jrammler/storefront/internal/entity"
)

type mockStorage struct {
	account entity.Account
	err     error
}

func (m *mockStorage) GetAccount(ctx context.Context, username string) (entity.Account, error) {
	if m.err != nil {
		return entity.Account{}, m.err
	}
	if username != m.account.Username {
		return entity.Account{}, errors.New("user not found")
	}
	return m.account, nil
}

// "password" hashed with cost 4.
const passwordHash = "$2a$04$dKD7Ty3vN6sYhWyRxDKepOOsjbJ2HtU/Q0Dw7wt.5Q2cqCXJEi/Wa"

func testAccount() entity.Account {
	return entity.Account{
		Username:     "testuser",
		PasswordHash: passwordHash,
		Role:         entity.RoleAdmin,
	}
}

func TestLoginUser(t *testing.T) {
	testCases := []struct {
		name          string
		username      string
		password      string
		storage       mockStorage
		expectedError error
	}{
		{
			name:          "Successful login",
			username:      "testuser",
			password:      "password",
			storage:       mockStorage{account: testAccount()},
			expectedError: nil,
		},
		{
			name:          "Invalid credentials",
			username:      "testuser",
			password:      "wrongpassword",
			storage:       mockStorage{account: testAccount()},
			expectedError: CredentialError,
		},
		{
			name:          "User not found",
			username:      "testuser",
			password:      "password",
			storage:       mockStorage{err: errors.New("user not found")},
			expectedError: CredentialError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			authService := newAuthService(t, &tc.storage)
			token, expiration, err := authService.LoginUser(context.Background(), tc.username, tc.password)

			if tc.expectedError != nil {
				if !errors.Is(err, tc.expectedError) {
					t.Errorf("Expected %q, got %q", tc.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error %q", err)
			}
			if token == "" || expiration == nil || !expiration.After(time.Now()) {
				t.Errorf("Expected token with future expiration, got %q %v", token, expiration)
			}
		})
	}
}

func newAuthService(t *testing.T, storage AccountStorage) *AuthService {
	t.Helper()
	authService, err := NewAuthService(storage, "secret")
	if err != nil {
		t.Fatalf("Unexpected error %q", err)
	}
	return authService
}

func TestNewAuthServiceRejectsEmptySecret(t *testing.T) {
	authService, err := NewAuthService(&mockStorage{account: testAccount()}, "")
	if !errors.Is(err, EmptySecretError) {
		t.Errorf("Expected %q, got %v", EmptySecretError, err)
	}
	if authService != nil {
		t.Error("Expected no service for an empty secret")
	}
}

func TestLogoutUser(t *testing.T) {
	authService := newAuthService(t, &mockStorage{account: testAccount()})
	token, _, err := authService.LoginUser(context.Background(), "testuser", "password")
	if err != nil {
		t.Fatalf("Unexpected error %q", err)
	}

	authService.LogoutUser(context.Background(), token)

	_, err = authService.GetSessionUser(context.Background(), token)
	if !errors.Is(err, NoValidSessionError) {
		t.Errorf("Expected revoked token to be rejected, got %v", err)
	}
}

func TestGetSessionUser(t *testing.T) {
	testCases := []struct {
		name          string
		token         func(as *AuthService) string
		expectedUser  string
		expectedError error
	}{
		{
			name: "Valid session",
			token: func(as *AuthService) string {
				token, _ := as.generateSessionToken(testAccount(), time.Now().Add(time.Hour))
				return token
			},
			expectedUser:  "testuser",
			expectedError: nil,
		},
		{
			name: "No valid session",
			token: func(as *AuthService) string {
				return "invalid_token"
			},
			expectedError: NoValidSessionError,
		},
		{
			name: "Expired session",
			token: func(as *AuthService) string {
				token, _ := as.generateSessionToken(testAccount(), time.Now().Add(-time.Hour))
				return token
			},
			expectedError: NoValidSessionError,
		},
		{
			name: "Signed with another secret",
			token: func(as *AuthService) string {
				other, _ := NewAuthService(as.storage, "other")
				token, _ := other.generateSessionToken(testAccount(), time.Now().Add(time.Hour))
				return token
			},
			expectedError: NoValidSessionError,
		},
		{
			name: "Account removed",
			token: func(as *AuthService) string {
				account := testAccount()
				account.Username = "gone"
				token, _ := as.generateSessionToken(account, time.Now().Add(time.Hour))
				return token
			},
			expectedError: NoValidSessionError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			authService := newAuthService(t, &mockStorage{account: testAccount()})
			account, err := authService.GetSessionUser(context.Background(), tc.token(authService))

			if account.Username != tc.expectedUser {
				t.Errorf("Expected username %q but got %q", tc.expectedUser, account.Username)
			}
			if !errors.Is(err, tc.expectedError) {
				t.Errorf("Unexpected error %q, expected %q", err, tc.expectedError)
			}
		})
	}
}

func TestSessionSeesRoleChanges(t *testing.T) {
	storage := &mockStorage{account: testAccount()}
	authService := newAuthService(t, storage)
	token, _, err := authService.LoginUser(context.Background(), "testuser", "password")
	if err != nil {
		t.Fatalf("Unexpected error %q", err)
	}

	storage.account.Role = entity.RoleSuperAdmin

	account, err := authService.GetSessionUser(context.Background(), token)
	if err != nil {
		t.Fatalf("Unexpected error %q", err)
	}
	if !account.IsSuperAdmin() {
		t.Errorf("Expected reloaded role %q, got %q", entity.RoleSuperAdmin, account.Role)
	}
}
