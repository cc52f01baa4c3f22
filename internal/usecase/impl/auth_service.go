package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bdgaraj/internal/delivery/context"
	"bdgaraj/internal/domain/entity"
	domainerrors "bdgaraj/internal/domain/errors"
	"bdgaraj/internal/domain/repository"
	"bdgaraj/internal/domain/service"
	"bdgaraj/internal/errors"
	"bdgaraj/internal/usecase"

	"github.com/google/uuid"
)

const tokenTypeBearer = "bearer"

type authService struct {
	admins repository.AdminRepository
	hasher service.PasswordHasher
	tokens service.TokenService
	logger *slog.Logger
	now    func() time.Time
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	admins repository.AdminRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		admins: admins,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
		now:    time.Now,
	}
}

// Login does not reveal whether the username or the password was wrong.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	logger := deliverycontext.LoggerOrDefault(ctx, srv.logger)

	admin, err := srv.admins.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			logger.Info("Login rejected", "username", input.Username, "reason", "unknown username")

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find admin")
	}

	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		logger.Info("Login rejected", "username", input.Username, "reason", "password mismatch")

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokens.Issue(admin.Username)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	logger.Info("Admin logged in", "username", admin.Username)

	return &usecase.TokenOutput{AccessToken: token, TokenType: tokenTypeBearer}, nil
}

func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.Admin, error) {
	logger := deliverycontext.LoggerOrDefault(ctx, srv.logger)

	if token == "" {
		logger.Debug("Authentication failed", "reason", "missing token")

		return nil, domainerrors.ErrUnauthenticated
	}

	claims, err := srv.tokens.Verify(token)
	if err != nil {
		reason := "invalid token"
		if errors.Is(err, service.ErrTokenExpired) {
			reason = "token expired"
		}
		logger.Info("Authentication failed", "reason", reason, "error", err)

		return nil, domainerrors.ErrUnauthenticated
	}

	admin, err := srv.admins.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			logger.Warn("Authentication failed", "reason", "admin not found", "username", claims.Subject)

			return nil, domainerrors.ErrUnauthenticated
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find admin")
	}

	return admin, nil
}

func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Admin, error) {
	_, err := srv.admins.FindByUsername(ctx, input.Username)
	switch {
	case err == nil:
		return nil, domainerrors.ErrUsernameTaken
	case !errors.Is(err, repository.ErrDocumentNotFound):
		return nil, domainerrors.NewDatabaseExecuteError(err, "find admin")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	admin := &entity.Admin{Username: input.Username, PasswordHash: hash}
	admin.Assign(uuid.NewString(), srv.now().UTC().Truncate(time.Millisecond))

	if err := srv.admins.Create(ctx, admin); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "create admin")
	}

	deliverycontext.LoggerOrDefault(ctx, srv.logger).Info("Registered admin", "username", admin.Username)

	return admin, nil
}
