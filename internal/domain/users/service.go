package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)

const tokenTTL = 24 * time.Hour

type Service struct {
	repo      Repository
	jwtSecret []byte
	now       func() time.Time
}

func NewService(repo Repository, jwtSecret string) *Service {
	return &Service{
		repo:      repo,
		jwtSecret: []byte(jwtSecret),
		now:       time.Now,
	}
}

type RegisterInput struct {
	Username   string
	Password   string
	SignupCode string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return User{}, ErrInvalidInput
	}

	// el hash corre antes de persistir; si falla no se toca el store
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hashing password: %w", err)
	}

	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		UserStatus:   StatusRegistered,
		SignupCode:   strings.TrimSpace(in.SignupCode),
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// LoginResult distingue el negativo esperado (credenciales malas,
// Authenticated=false) del fallo real, que viaja como error.
type LoginResult struct {
	Authenticated bool
	Token         string
	UserStatus    int
}

func (s *Service) Login(ctx context.Context, username, password string) (LoginResult, error) {
	u, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return LoginResult{}, nil
		}
		return LoginResult{}, err
	}

	// bcrypt compara en tiempo constante
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, nil
	}

	token, err := s.signToken(u)
	if err != nil {
		return LoginResult{}, fmt.Errorf("signing token: %w", err)
	}

	return LoginResult{
		Authenticated: true,
		Token:         token,
		UserStatus:    u.UserStatus,
	}, nil
}

func (s *Service) signToken(u User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":      u.ID,
		"username": u.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
