package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barbershop-site/internal/domain/catalog"
)

const TokenTTL = 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenMissing       = errors.New("access token required")
	ErrTokenInvalid       = errors.New("invalid or expired token")
)

// Identity is the administrator a verified token belongs to.
type Identity struct {
	UserID   uint   `json:"id"`
	Username string `json:"username"`
}

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type Service struct {
	admins catalog.AdminRepository
	secret []byte
	now    func() time.Time
}

func NewService(admins catalog.AdminRepository, secret string) *Service {
	return &Service{
		admins: admins,
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Login checks the credentials and issues a signed token. Unknown users and
// wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (string, *Identity, error) {
	user, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	id := &Identity{UserID: user.ID, Username: user.Username}
	token, err := s.Issue(*id)
	if err != nil {
		return "", nil, err
	}
	return token, id, nil
}

func (s *Service) Issue(id Identity) (string, error) {
	now := s.now()
	claims := Claims{
		Username: id.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", id.UserID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates signature and expiry and that the admin still exists.
func (s *Service) Verify(ctx context.Context, raw string) (*Identity, error) {
	if raw == "" {
		return nil, ErrTokenMissing
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}

	var userID uint
	if _, err := fmt.Sscanf(claims.Subject, "%d", &userID); err != nil || userID == 0 {
		return nil, ErrTokenInvalid
	}

	user, err := s.admins.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}

	return &Identity{UserID: user.ID, Username: user.Username}, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
