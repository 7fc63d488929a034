package commands

import (
	"context"
	"log/slog"

	"lushquote/internal/domain/owner"
	reqdto "lushquote/internal/handler/dto/request"
	"lushquote/internal/infra"
	"lushquote/internal/pkg/clock"
	"lushquote/internal/pkg/errs"
	"lushquote/internal/pkg/jwt"
	"lushquote/internal/pkg/password"
	"lushquote/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrOwnerNotFound        = errs.New("owner not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrOwnerInactive        = errs.New("owner inactive")
	ErrEmailTaken           = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type AuthResult struct {
	OwnerID   uuid.UUID
	TokenPair *jwt.TokenPair
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error)
}

type authCommandsImpl struct {
	ownerRepo  OwnerRepository
	readStore  queries.OwnerReadStore
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(
	ownerRepo OwnerRepository,
	readStore queries.OwnerReadStore,
	jwtService *jwt.Service,
	clock clock.Clock,
) AuthCommands {
	return &authCommandsImpl{
		ownerRepo:  ownerRepo,
		readStore:  readStore,
		jwtService: jwtService,
		clock:      clock,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	newOwner := owner.NewOwner(credentials.Email(), hash, req.DisplayName)
	if err := a.ownerRepo.Create(ctx, newOwner); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	tokenPair, err := a.jwtService.GenerateTokenPair(newOwner.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{OwnerID: newOwner.ID(), TokenPair: tokenPair}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	record, err := a.validateOwner(ctx, credentials)
	if err != nil {
		return nil, err
	}

	tokenPair, err := a.jwtService.GenerateTokenPair(record.View.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if updateErr := a.ownerRepo.UpdateLastLogin(ctx, record.View.ID); updateErr != nil {
		// Not critical; login already succeeded.
		slog.Warn("failed to update last login", "owner_id", record.View.ID, "error", updateErr.Error())
	}

	return &AuthResult{OwnerID: record.View.ID, TokenPair: tokenPair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := a.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// The owner must still exist and be active for the rotation to succeed.
	view, err := a.readStore.FindByID(ctx, claims.OwnerID, a.monthKey())
	if err != nil {
		return nil, ErrOwnerNotFound
	}
	if !view.IsActive {
		return nil, ErrOwnerInactive
	}

	tokenPair, err := a.jwtService.GenerateTokenPair(claims.OwnerID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return tokenPair, nil
}

func (a *authCommandsImpl) validateOwner(ctx context.Context, credentials owner.Credentials) (*queries.OwnerAuthRecord, error) {
	record, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Same error as a password mismatch to prevent account enumeration.
		return nil, ErrInvalidCredentials
	}

	if !record.View.IsActive {
		return nil, ErrOwnerInactive
	}

	if err := password.ComparePassword(record.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return record, nil
}

func (a *authCommandsImpl) monthKey() string {
	return monthKeyAt(a.clock)
}
