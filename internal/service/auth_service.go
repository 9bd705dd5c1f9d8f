package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/article-writer-api/internal/apperr"
	"github.com/article-writer-api/internal/config"
	"github.com/article-writer-api/internal/models"
	"github.com/article-writer-api/internal/prompt"
	"github.com/article-writer-api/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const maxCustomInstructions = 500

// authService is the concrete implementation of AuthService
type authService struct {
	users  repository.UserRepository
	secret []byte
	ttl    time.Duration
	log    zerolog.Logger
}

func newAuthService(users repository.UserRepository, cfg config.AuthConfig, log zerolog.Logger) *authService {
	return &authService{
		users:  users,
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
		log:    log.With().Str("service", "auth").Logger(),
	}
}

// Register creates an account and returns it with a signed token
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)

	if email == "" || username == "" || req.Password == "" {
		return nil, "", apperr.Validation("email, username and password are required")
	}
	if len(req.Password) < 8 {
		return nil, "", apperr.Validation("password must be at least 8 characters")
	}

	if exists, err := s.users.EmailExists(ctx, email); err != nil {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	} else if exists {
		return nil, "", apperr.Conflict("email is already registered")
	}
	if exists, err := s.users.UsernameExists(ctx, username); err != nil {
		return nil, "", fmt.Errorf("failed to check username: %w", err)
	} else if exists {
		return nil, "", apperr.Conflict("username is already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		Active:       true,
		Preferences: models.Preferences{
			DefaultWordCount: prompt.DefaultWordCount,
			DefaultTone:      prompt.DefaultTone,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.signToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.log.Info().Str("user_id", user.ID).Msg("User registered")
	return user, token, nil
}

// Login verifies credentials and returns the account with a signed token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, "", apperr.Validation("email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, "", apperr.Auth("invalid email or password")
	}
	if !user.Active {
		return nil, "", apperr.Auth("account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", apperr.Auth("invalid email or password")
	}

	token, err := s.signToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetUser loads the caller's account
func (s *authService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}
	return user, nil
}

// UpdateProfile applies partial updates to the caller's writing style
// and generation preferences
func (s *authService) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username == "" {
			return nil, apperr.Validation("username must not be empty")
		}
		if username != user.Username {
			if exists, err := s.users.UsernameExists(ctx, username); err != nil {
				return nil, fmt.Errorf("failed to check username: %w", err)
			} else if exists {
				return nil, apperr.Conflict("username is already taken")
			}
			user.Username = username
		}
	}

	if req.WritingStyle != nil {
		if err := validateStyleOverride(req.WritingStyle); err != nil {
			return nil, err
		}
		user.WritingStyle = prompt.MergeStyle(user.WritingStyle, req.WritingStyle)
	}

	if req.Preferences != nil {
		p := *req.Preferences
		if p.DefaultNiche != "" && !models.ValidNiches[p.DefaultNiche] {
			return nil, apperr.Validation("invalid default niche")
		}
		if p.DefaultWordCount != 0 && (p.DefaultWordCount < models.MinWordCount || p.DefaultWordCount > models.MaxWordCount) {
			return nil, apperr.Validation(fmt.Sprintf("default word count must be between %d and %d", models.MinWordCount, models.MaxWordCount))
		}
		if p.DefaultNiche != "" {
			user.Preferences.DefaultNiche = p.DefaultNiche
		}
		if p.DefaultWordCount != 0 {
			user.Preferences.DefaultWordCount = p.DefaultWordCount
		}
		if p.DefaultTone != "" {
			user.Preferences.DefaultTone = p.DefaultTone
		}
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// VerifyToken validates a bearer token and returns the account id. The
// account must still exist and be active.
func (s *authService) VerifyToken(ctx context.Context, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", apperr.Auth("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperr.Auth("invalid token claims")
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", apperr.Auth("invalid token claims")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return "", apperr.Auth("invalid or expired token")
	}
	if !user.Active {
		return "", apperr.Auth("account is deactivated")
	}

	return userID, nil
}

func (s *authService) signToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(s.ttl).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func validateStyleOverride(o *models.StyleOverride) error {
	if o.Voice != nil && !models.ValidVoices[*o.Voice] {
		return apperr.Validation("invalid writing style voice")
	}
	if o.Complexity != nil && !models.ValidComplexities[*o.Complexity] {
		return apperr.Validation("invalid writing style complexity")
	}
	if o.Structure != nil && !models.ValidStructures[*o.Structure] {
		return apperr.Validation("invalid writing style structure")
	}
	if o.CustomInstructions != nil && len(*o.CustomInstructions) > maxCustomInstructions {
		return apperr.Validation(fmt.Sprintf("custom instructions must be at most %d characters", maxCustomInstructions))
	}
	return nil
}
