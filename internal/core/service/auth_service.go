package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fintrack/finance-api/internal/core/domain"
	"github.com/fintrack/finance-api/internal/core/ports"
)

const (
	claimTypeAccess  = "access"
	claimTypeRefresh = "refresh"
)

// AuthService implements registration, login and token refresh.
type AuthService struct {
	users      ports.UserRepository
	tokens     ports.TokenStore
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
	logger     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenStore, jwtSecret string, accessTTL, refreshTTL time.Duration, logger zerolog.Logger) *AuthService {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &AuthService{
		users:      users,
		tokens:     tokens,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		logger:     logger,
	}
}

// Register creates a new account. The password is stored only as a bcrypt
// hash; uniqueness of username and email is enforced by the repository.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues an access/refresh token pair. Unknown
// users and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.TokenPair, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	access, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refresh, tokenID, err := s.generateRefreshToken(user)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.Save(ctx, user.ID, tokenID, s.refreshTTL); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user logged in")
	return &ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh redeems a refresh token for a new access token. The token must be
// unexpired, carry the refresh type claim and still be present in the store.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(refreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidToken
	}

	typ, _ := claims["typ"].(string)
	if typ != claimTypeRefresh {
		return "", domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return "", domain.ErrInvalidToken
	}

	tokenID, _ := claims["jti"].(string)
	ok, err := s.tokens.Exists(ctx, userID, tokenID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidToken
		}
		return "", err
	}

	return s.generateAccessToken(user)
}

// Profile returns the non-sensitive fields of the authenticated account.
func (s *AuthService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// Logout revokes every refresh token the user holds. Outstanding access
// tokens stay valid until they expire.
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	return s.tokens.RevokeAll(ctx, userID)
}

// DeleteAccount removes the user. Owned categories and records cascade in the
// store; refresh tokens are revoked so the identity cannot come back.
func (s *AuthService) DeleteAccount(ctx context.Context, userID int64) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	if err := s.tokens.RevokeAll(ctx, userID); err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to revoke refresh tokens")
	}
	s.logger.Info().Int64("user_id", userID).Msg("account deleted")
	return nil
}

func (s *AuthService) generateAccessToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatInt(user.ID, 10),
		"username": user.Username,
		"typ":      claimTypeAccess,
		"iat":      now.Unix(),
		"exp":      now.Add(s.accessTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) generateRefreshToken(user *domain.User) (token, tokenID string, err error) {
	now := time.Now()
	tokenID = uuid.NewString()
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(user.ID, 10),
		"typ": claimTypeRefresh,
		"jti": tokenID,
		"iat": now.Unix(),
		"exp": now.Add(s.refreshTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = t.SignedString([]byte(s.jwtSecret))
	return token, tokenID, err
}
