package service

import (
	"context"
	"testing"
	"time"

	"github.com/article-writer-api/internal/apperr"
	"github.com/article-writer-api/internal/config"
	"github.com/article-writer-api/internal/mocks"
	"github.com/article-writer-api/internal/models"
	"github.com/rs/zerolog"
)

func newTestAuthService() (*authService, *mocks.MockUserRepository) {
	repo := mocks.NewMockUserRepository()
	cfg := config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour}
	return newAuthService(repo, cfg, zerolog.Nop()), repo
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	user, token, err := svc.Register(ctx, &models.RegisterRequest{
		Email:    "  Writer@Test.COM ",
		Username: "writer",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Email != "writer@test.com" {
		t.Errorf("Email should be normalized, got %q", user.Email)
	}
	if token == "" {
		t.Fatal("Register should return a token")
	}
	if user.Preferences.DefaultWordCount != 1000 || user.Preferences.DefaultTone != "professional" {
		t.Errorf("New accounts should get default preferences, got %+v", user.Preferences)
	}

	loggedIn, loginToken, err := svc.Login(ctx, &models.LoginRequest{
		Email:    "writer@test.com",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if loggedIn.ID != user.ID || loginToken == "" {
		t.Error("Login should return the registered account with a token")
	}

	verifiedID, err := svc.VerifyToken(ctx, loginToken)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if verifiedID != user.ID {
		t.Errorf("Token should resolve to the account id, got %q", verifiedID)
	}
}

func TestAuthService_Register_Rejections(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, &models.RegisterRequest{Email: "a@b.com", Username: "a", Password: "short"}); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("Short password should be rejected, got %v", err)
	}

	first := &models.RegisterRequest{Email: "dup@test.com", Username: "original", Password: "supersecret"}
	if _, _, err := svc.Register(ctx, first); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, _, err := svc.Register(ctx, &models.RegisterRequest{Email: "dup@test.com", Username: "other", Password: "supersecret"}); apperr.KindOf(err) != apperr.KindConflict {
		t.Errorf("Duplicate email should conflict, got %v", err)
	}
	if _, _, err := svc.Register(ctx, &models.RegisterRequest{Email: "new@test.com", Username: "original", Password: "supersecret"}); apperr.KindOf(err) != apperr.KindConflict {
		t.Errorf("Duplicate username should conflict, got %v", err)
	}
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	svc, repo := newTestAuthService()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, &models.RegisterRequest{Email: "a@test.com", Username: "a", Password: "supersecret"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, _, err := svc.Login(ctx, &models.LoginRequest{Email: "a@test.com", Password: "wrongpass"}); apperr.KindOf(err) != apperr.KindAuth {
		t.Errorf("Wrong password should be an auth error, got %v", err)
	}
	if _, _, err := svc.Login(ctx, &models.LoginRequest{Email: "nobody@test.com", Password: "supersecret"}); apperr.KindOf(err) != apperr.KindAuth {
		t.Errorf("Unknown email should be an auth error, got %v", err)
	}

	user := repo.EmailToUser["a@test.com"]
	user.Active = false
	if _, _, err := svc.Login(ctx, &models.LoginRequest{Email: "a@test.com", Password: "supersecret"}); apperr.KindOf(err) != apperr.KindAuth {
		t.Errorf("Deactivated account should be an auth error, got %v", err)
	}
}

func TestAuthService_VerifyToken_Rejections(t *testing.T) {
	svc, repo := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.VerifyToken(ctx, "not-a-token"); apperr.KindOf(err) != apperr.KindAuth {
		t.Errorf("Garbage token should be rejected, got %v", err)
	}

	user, token, err := svc.Register(ctx, &models.RegisterRequest{Email: "a@test.com", Username: "a", Password: "supersecret"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// Token signed for an account that no longer exists
	delete(repo.Users, user.ID)
	delete(repo.EmailToUser, user.Email)
	if _, err := svc.VerifyToken(ctx, token); apperr.KindOf(err) != apperr.KindAuth {
		t.Errorf("Token for a deleted account should be rejected, got %v", err)
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	user, _, err := svc.Register(ctx, &models.RegisterRequest{Email: "a@test.com", Username: "a", Password: "supersecret"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	voice := "conversational"
	updated, err := svc.UpdateProfile(ctx, user.ID, &models.UpdateProfileRequest{
		WritingStyle: &models.StyleOverride{Voice: &voice},
		Preferences:  &models.Preferences{DefaultNiche: "finance", DefaultWordCount: 800},
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if updated.WritingStyle.Voice != "conversational" {
		t.Errorf("Style override should apply, got %q", updated.WritingStyle.Voice)
	}
	if updated.Preferences.DefaultNiche != "finance" || updated.Preferences.DefaultWordCount != 800 {
		t.Errorf("Preferences should apply, got %+v", updated.Preferences)
	}
	if updated.Preferences.DefaultTone != "professional" {
		t.Errorf("Untouched preference should persist, got %q", updated.Preferences.DefaultTone)
	}

	bad := "robotic"
	if _, err := svc.UpdateProfile(ctx, user.ID, &models.UpdateProfileRequest{
		WritingStyle: &models.StyleOverride{Voice: &bad},
	}); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("Unknown voice should be rejected, got %v", err)
	}
}
