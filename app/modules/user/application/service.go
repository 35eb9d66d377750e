package userservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"

	auditdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/audit/domain"
	userdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/user/domain"
	userjwt "github.com/Clone-Wars-Club/arena-bot/app/modules/user/infrastructure/jwt"
	userdb "github.com/Clone-Wars-Club/arena-bot/app/modules/user/infrastructure/repositories"
)

// UserService implements the Service interface.
type UserService struct {
	repo    userdb.Repository
	jwt     userjwt.Provider
	ttl     time.Duration
	auditor auditdomain.Recorder
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewUserService creates a new UserService.
func NewUserService(
	repo userdb.Repository,
	provider userjwt.Provider,
	ttl time.Duration,
	auditor auditdomain.Recorder,
	logger *slog.Logger,
	tracer trace.Tracer,
) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		repo:    repo,
		jwt:     provider,
		ttl:     ttl,
		auditor: auditor,
		logger:  logger,
		tracer:  tracer,
	}
}

func (s *UserService) issueToken(user *userdb.User) (*TokenResponse, error) {
	token, err := s.jwt.GenerateToken(&userdomain.Claims{
		Username: user.Username,
		Role:     user.Role,
	}, s.ttl)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// Register creates a player account and returns its first token.
func (s *UserService) Register(ctx context.Context, username, password string) (*TokenResponse, error) {
	ctx, span := s.tracer.Start(ctx, "user.Register")
	defer span.End()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &userdb.User{
		Username:       username,
		HashedPassword: string(hash),
		Role:           userdomain.RolePlayer,
	}
	if err := s.repo.Create(ctx, nil, user); err != nil {
		if errors.Is(err, userdb.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "user registered", slog.String("username", username))
	s.auditor.Record(ctx, auditdomain.Entry{
		Username: username,
		Action:   auditdomain.ActionUserRegister,
		Details:  "Success",
	})

	return s.issueToken(user)
}

// Login verifies credentials and returns a token. Failed attempts land in
// the audit log with the attempted username.
func (s *UserService) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	ctx, span := s.tracer.Start(ctx, "user.Login")
	defer span.End()

	user, err := s.repo.GetByUsername(ctx, nil, username)
	if err != nil && !errors.Is(err, userdb.ErrNotFound) {
		return nil, err
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		s.auditor.Record(ctx, auditdomain.Entry{
			Username: username,
			Action:   auditdomain.ActionUserLogin,
			Details:  "Failed: incorrect username or password",
		})
		return nil, ErrInvalidCredentials
	}

	s.auditor.Record(ctx, auditdomain.Entry{
		Username: username,
		Action:   auditdomain.ActionUserLogin,
		Details:  "Success",
	})

	return s.issueToken(user)
}

// Authenticate resolves a bearer token to the account it names. The account
// is re-read so role changes apply to tokens issued before the change.
func (s *UserService) Authenticate(ctx context.Context, token string) (*userdomain.User, error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.GetByUsername(ctx, nil, claims.Username)
	if err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return nil, userjwt.ErrInvalidToken
		}
		return nil, err
	}
	return user.ToDomain(), nil
}

// Promote grants the admin role to the named user.
func (s *UserService) Promote(ctx context.Context, admin *userdomain.User, username string) (*userdomain.User, error) {
	ctx, span := s.tracer.Start(ctx, "user.Promote")
	defer span.End()

	user, err := s.repo.GetByUsername(ctx, nil, username)
	if err != nil {
		return nil, err
	}
	user.Role = userdomain.RoleAdmin
	if err := s.repo.UpdateRole(ctx, nil, user); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user promoted",
		slog.String("username", username),
		slog.String("promoted_by", admin.Username),
	)
	s.auditor.Record(ctx, auditdomain.Entry{
		Username: admin.Username,
		Action:   auditdomain.ActionPromoteUser,
		Details:  fmt.Sprintf("User %s promoted to admin", username),
	})

	return user.ToDomain(), nil
}

// ChangePassword verifies the current password, stores the new hash and
// clears the force-change flag.
func (s *UserService) ChangePassword(ctx context.Context, user *userdomain.User, oldPassword, newPassword string) error {
	ctx, span := s.tracer.Start(ctx, "user.ChangePassword")
	defer span.End()

	row, err := s.repo.GetByUsername(ctx, nil, user.Username)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(row.HashedPassword), []byte(oldPassword)) != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	row.HashedPassword = string(hash)
	row.MustChangePassword = false
	if err := s.repo.UpdatePassword(ctx, nil, row); err != nil {
		return err
	}

	s.auditor.Record(ctx, auditdomain.Entry{
		Username: user.Username,
		Action:   auditdomain.ActionPasswordChange,
		Details:  "Success",
	})
	return nil
}

// CountUsers returns the total number of accounts.
func (s *UserService) CountUsers(ctx context.Context) (int, error) {
	return s.repo.Count(ctx, nil)
}
