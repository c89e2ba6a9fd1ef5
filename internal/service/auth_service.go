package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"ai-helper-be/internal/config"
	"ai-helper-be/internal/dto"
	"ai-helper-be/internal/entity"
	"ai-helper-be/internal/pkg/mailer"
	"ai-helper-be/internal/repository/memory"
	"ai-helper-be/internal/repository/specification"
	"ai-helper-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailExists is intentionally explicit: the registration flow already
	// discloses email existence, so there is nothing to hide here.
	ErrEmailExists = errors.New("user with this email already exists")

	// ErrInvalidCredentials is uniform for unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidResetToken covers unknown, expired and already-used tokens.
	ErrInvalidResetToken = errors.New("reset link is invalid or expired")

	ErrUserNotFound = errors.New("user not found")
)

const resetTokenTTL = 15 * time.Minute

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, string, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, string, error)
	Logout(sessionToken string)

	// UserFromSession resolves a session token to its user. A missing or
	// stale session yields (nil, nil), not an error.
	UserFromSession(ctx context.Context, sessionToken string) (*dto.UserResponse, error)
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) (*dto.ForgotPasswordResponse, error)
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	sessions     *memory.SessionRepository
	emailService mailer.IEmailService
	activityPub  IPublisherService
	usageCfg     config.UsageConfig
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.SessionRepository,
	emailService mailer.IEmailService,
	activityPub IPublisherService,
	usageCfg config.UsageConfig,
) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		sessions:     sessions,
		emailService: emailService,
		activityPub:  activityPub,
		usageCfg:     usageCfg,
	}
}

// generateSessionToken returns 32 random bytes hex encoded. The token is
// opaque: it carries no claims and is only meaningful to the session store.
func generateSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func toUserResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:                    user.Id,
		Email:                 user.Email,
		Name:                  user.Name,
		AvatarURL:             user.AvatarURL,
		SubscriptionPlan:      user.SubscriptionPlan,
		SubscriptionExpiresAt: user.SubscriptionExpiresAt,
		Role:                  string(user.Role),
		CreatedAt:             user.CreatedAt,
		UpdatedAt:             user.UpdatedAt,
	}
}

func (s *authService) createSession(userId uuid.UUID) (string, error) {
	token, err := generateSessionToken()
	if err != nil {
		return "", err
	}
	s.sessions.Save(&entity.Session{
		Token:     token,
		UserId:    userId,
		CreatedAt: time.Now(),
	})
	return token, nil
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	email := strings.ToLower(req.Email)

	// The check and the insert run inside one transaction; the unique index
	// on email backstops concurrent registrations.
	if err := uow.Begin(ctx); err != nil {
		return nil, "", err
	}
	defer uow.Rollback()

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	user := &entity.User{
		Id:               uuid.New(),
		Email:            email,
		PasswordHash:     string(hash),
		Name:             req.Name,
		SubscriptionPlan: "free",
		Role:             entity.UserRoleUser,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, "", err
	}

	// Every new account starts a fresh usage period.
	usage := &entity.UsageLimit{
		Id:            uuid.New(),
		UserId:        user.Id,
		PeriodStart:   now,
		PeriodEnd:     now.Add(time.Duration(s.usageCfg.PeriodDays) * 24 * time.Hour),
		RequestsUsed:  0,
		RequestsLimit: s.usageCfg.RequestsLimit,
		TokensUsed:    0,
		TokensLimit:   s.usageCfg.TokensLimit,
	}
	if err := uow.UsageRepository().Create(ctx, usage); err != nil {
		return nil, "", err
	}

	if err := uow.Commit(); err != nil {
		return nil, "", err
	}

	token, err := s.createSession(user.Id)
	if err != nil {
		return nil, "", err
	}

	publishActivity(ctx, s.activityPub, user.Id, "USER_REGISTERED", map[string]interface{}{
		"email": user.Email,
	})

	return toUserResponse(user), token, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: strings.ToLower(req.Email)})
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.createSession(user.Id)
	if err != nil {
		return nil, "", err
	}

	publishActivity(ctx, s.activityPub, user.Id, "USER_LOGIN", nil)

	return toUserResponse(user), token, nil
}

func (s *authService) Logout(sessionToken string) {
	if sessionToken == "" {
		return
	}
	s.sessions.Delete(sessionToken)
}

func (s *authService) UserFromSession(ctx context.Context, sessionToken string) (*dto.UserResponse, error) {
	if sessionToken == "" {
		return nil, nil
	}

	session, ok := s.sessions.Get(sessionToken)
	if !ok {
		return nil, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: session.UserId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	return toUserResponse(user), nil
}

func (s *authService) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) (*dto.ForgotPasswordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: strings.ToLower(req.Email)})
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Do not disclose whether the email is registered.
		return &dto.ForgotPasswordResponse{Success: true}, nil
	}

	token := &entity.PasswordResetToken{
		Token:     uuid.NewString(),
		UserId:    user.Id,
		ExpiresAt: time.Now().Add(resetTokenTTL),
		CreatedAt: time.Now(),
	}
	if err := uow.UserRepository().CreatePasswordResetToken(ctx, token); err != nil {
		return nil, err
	}

	go func() {
		if emailErr := s.emailService.SendResetToken(user.Email, token.Token); emailErr != nil {
			fmt.Printf("Error sending password reset email: %v\n", emailErr)
		}
	}()

	return &dto.ForgotPasswordResponse{
		Success:    true,
		ResetToken: token.Token,
		ExpiresAt:  &token.ExpiresAt,
	}, nil
}

func (s *authService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Consumption is one-shot: the token row is deleted whether it turns out
	// to be expired or not, inside the same transaction as the password write.
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	token, err := uow.UserRepository().FindPasswordResetToken(ctx, specification.ByToken{Token: req.Token})
	if err != nil {
		return err
	}
	if token == nil {
		return ErrInvalidResetToken
	}

	if err := uow.UserRepository().DeletePasswordResetToken(ctx, token.Token); err != nil {
		return err
	}

	if time.Now().After(token.ExpiresAt) {
		// Commit so the expired token is still consumed.
		if commitErr := uow.Commit(); commitErr != nil {
			return commitErr
		}
		return ErrInvalidResetToken
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: token.UserId})
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	publishActivity(ctx, s.activityPub, user.Id, "PASSWORD_RESET", nil)

	return nil
}
