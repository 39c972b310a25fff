package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jrammler/storefront/internal/config"
	"github.com/jrammler/storefront/internal/entity"
	"golang.org/x/crypto/bcrypt"
)

var CredentialError = errors.New("Provided credentials are invalid")
var TokenGenerationError = errors.New("Error while generating token")
var NoValidSessionError = errors.New("No valid session with provided Token")
var EmptySecretError = errors.New("Session secret must not be empty")

type AccountStorage interface {
	GetAccount(ctx context.Context, username string) (entity.Account, error)
}

type AuthService struct {
	storage AccountStorage
	secret  []byte
	now     func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewAuthService(storage AccountStorage, secret string) (*AuthService, error) {
	if secret == "" {
		return nil, EmptySecretError
	}
	return &AuthService{
		storage: storage,
		secret:  []byte(secret),
		now:     time.Now,
		revoked: make(map[string]time.Time),
	}, nil
}

type claims struct {
	Role entity.Role `json:"role"`
	jwt.RegisteredClaims
}

func HashPassword(password string) ([]byte, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return bytes, err
}

func checkPasswordHash(password string, hash []byte) bool {
	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	return err == nil
}

func (s *AuthService) generateSessionToken(account entity.Account, expiration time.Time) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   account.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiration),
		},
	})
	return token.SignedString(s.secret)
}

func (s *AuthService) parseSessionToken(sessionToken string) (*claims, error) {
	parsed := &claims{}
	_, err := jwt.ParseWithClaims(sessionToken, parsed, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}
	return parsed, nil
}

func (s *AuthService) LoginUser(ctx context.Context, username, password string) (string, *time.Time, error) {
	account, err := s.storage.GetAccount(ctx, username)
	if err != nil {
		return "", nil, CredentialError
	}
	if !checkPasswordHash(password, []byte(account.PasswordHash)) {
		return "", nil, CredentialError
	}
	expiration := s.now().Add(config.SessionLifetime)
	sessionToken, err := s.generateSessionToken(account, expiration)
	if err != nil {
		return "", nil, TokenGenerationError
	}
	return sessionToken, &expiration, nil
}

func (s *AuthService) LogoutUser(ctx context.Context, sessionToken string) {
	parsed, err := s.parseSessionToken(sessionToken)
	if err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	s.revoked[parsed.ID] = parsed.ExpiresAt.Time
}

// GetSessionUser returns the account behind a session token. The account is
// read again from storage so role changes apply to running sessions.
func (s *AuthService) GetSessionUser(ctx context.Context, sessionToken string) (entity.Account, error) {
	parsed, err := s.parseSessionToken(sessionToken)
	if err != nil {
		return entity.Account{}, NoValidSessionError
	}
	s.mu.Lock()
	_, revoked := s.revoked[parsed.ID]
	s.mu.Unlock()
	if revoked {
		return entity.Account{}, NoValidSessionError
	}
	account, err := s.storage.GetAccount(ctx, parsed.Subject)
	if err != nil {
		return entity.Account{}, NoValidSessionError
	}
	return account, nil
}

func (s *AuthService) pruneLocked() {
	now := s.now()
	for id, expiration := range s.revoked {
		if expiration.Before(now) {
			delete(s.revoked, id)
		}
	}
}
