package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"support-portal-backend/internal/config"
	"support-portal-backend/internal/database/models"
	apperrors "support-portal-backend/internal/errors"
	"support-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService provides registration, login and JWT issuance/verification.
// The signing secret is process-wide configuration, never per-tenant.
type AuthService struct {
	cfg       *config.Config
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// AuthClaims represents JWT token claims. The tenant id and role are frozen
// at issuance time and never re-read from storage per request; a demoted or
// re-tenanted user keeps the old claims until the token expires.
type AuthClaims struct {
	UserID     uuid.UUID       `json:"user_id"`
	CustomerID string          `json:"customer_id"`
	Role       models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Email      string          `json:"email" binding:"required" validate:"required,email"`
	Password   string          `json:"password" binding:"required" validate:"required,min=6"`
	CustomerID string          `json:"customerId" binding:"required" validate:"required,max=40"`
	Role       models.UserRole `json:"role,omitempty"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID         uuid.UUID       `json:"id"`
	Email      string          `json:"email"`
	CustomerID string          `json:"customerId"`
	Role       models.UserRole `json:"role"`
}

// LoginResponse represents the response for a successful login
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NewAuthService creates a new authentication service
func NewAuthService(cfg *config.Config, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *AuthService {
	return &AuthService{
		cfg:       cfg,
		userRepo:  userRepo,
		validator: validator,
	}
}

// Register creates a new user. The password is hashed exactly once, here,
// before the repository Create; the model carries no persistence hooks.
func (s *AuthService) Register(req *RegisterRequest) (*UserResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Role == "" {
		req.Role = models.UserRoleUser
	}
	if !req.Role.IsValid() {
		return nil, apperrors.NewValidationError("role", "must be Admin or User")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		CustomerID:   req.CustomerID,
		Role:         req.Role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	resp := s.toUserResponse(user)
	return &resp, nil
}

// Login verifies credentials and issues a signed token. Unknown email and
// wrong password produce the same error so neither can be probed apart.
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		Token: token,
		User:  s.toUserResponse(user),
	}, nil
}

// GenerateJWT creates a signed token binding the user to their tenant and role
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:     user.ID,
		CustomerID: user.CustomerID,
		Role:       user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.TokenTTLHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "support-portal-backend",
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateJWT validates and parses a token. Every failure mode (malformed,
// expired, bad signature, wrong method) collapses into the same
// AuthenticationError so callers cannot tell which check failed.
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, apperrors.ErrInvalidToken
}

func (s *AuthService) toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		CustomerID: user.CustomerID,
		Role:       user.Role,
	}
}
