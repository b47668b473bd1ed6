package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"album-shop/internal/data/entity"
	"album-shop/internal/data/repository"
	"album-shop/internal/dto/request"
	"album-shop/internal/dto/response"
	"album-shop/internal/errs"
	"album-shop/internal/token"
	"album-shop/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	Logout(ctx context.Context, rawToken string) error

	// Authorize is the single gate in front of every protected endpoint:
	// it verifies signature and expiry, consults the revocation ledger,
	// and, when requiredRole is non-empty, loads the subject's current
	// role. Returns the subject username. Read-only and safe to retry.
	Authorize(ctx context.Context, rawToken string, requiredRole entity.UserRole) (string, error)
}

type authService struct {
	repo       *repository.Repository
	issuer     *token.Issuer
	adminCode  string
	bcryptCost int
	log        *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	issuer *token.Issuer,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:       repo,
		issuer:     issuer,
		adminCode:  config.Auth.AdminCode,
		bcryptCost: config.Auth.BcryptCost,
		log:        log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	// 1. Validate input
	if fieldErrs := utils.ValidateStruct(req); len(fieldErrs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", fieldErrs))
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidInput, utils.FormatValidationErrors(fieldErrs))
	}

	// 2. Resolve role. Admin elevation requires the deployment-wide code.
	role := entity.RoleUser
	if req.Role == string(entity.RoleAdmin) {
		if subtle.ConstantTimeCompare([]byte(req.AdminCode), []byte(s.adminCode)) != 1 {
			s.log.Warn("Admin registration with bad admin code",
				zap.String("username", req.Username))
			return nil, fmt.Errorf("invalid admin code: %w", errs.ErrForbidden)
		}
		role = entity.RoleAdmin
	}

	// 3. Hash password; plaintext is not referenced again after this point.
	hashedPassword, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("process password: %w", err)
	}

	// 4. Create user. Uniqueness of username/email is enforced by the
	// database, so concurrent registrations race safely: one wins, the
	// rest get ErrConflict.
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
		zap.String("role", string(role)),
	)

	return &response.RegisterResponse{Role: role}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	// 1. Validate
	if fieldErrs := utils.ValidateStruct(req); len(fieldErrs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", fieldErrs))
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidInput, utils.FormatValidationErrors(fieldErrs))
	}

	// 2. Find user by email
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err))
		return nil, err
	}

	// 3. Missing user and wrong password produce the same error; no
	// account-existence oracle.
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid credentials", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials: %w", errs.ErrUnauthorized)
	}

	// 4. Issue token
	signed, claims, err := s.issuer.Issue(user.Username)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("username", user.Username))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	return &response.LoginResponse{
		AccessToken: signed,
		Username:    user.Username,
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

// Logout revokes the token's jti. Idempotent: revoking an already-revoked
// token succeeds.
func (s *authService) Logout(ctx context.Context, rawToken string) error {
	claims, err := s.issuer.Verify(rawToken)
	if err != nil {
		s.log.Warn("Logout with invalid token", zap.Error(err))
		return fmt.Errorf("%v: %w", err, errs.ErrUnauthorized)
	}

	if err := s.repo.RevokedToken.Revoke(ctx, claims.TokenID()); err != nil {
		return err
	}

	s.log.Info("User logged out",
		zap.String("username", claims.Subject()),
		zap.String("jti", claims.TokenID()),
	)
	return nil
}

func (s *authService) Authorize(ctx context.Context, rawToken string, requiredRole entity.UserRole) (string, error) {
	// Cheap stateless verification first; malformed or expired tokens are
	// rejected without a store lookup.
	claims, err := s.issuer.Verify(rawToken)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, errs.ErrUnauthorized)
	}

	// Then the revocation ledger.
	revoked, err := s.repo.RevokedToken.IsRevoked(ctx, claims.TokenID())
	if err != nil {
		return "", err
	}
	if revoked {
		s.log.Warn("Revoked token presented",
			zap.String("username", claims.Subject()),
			zap.String("jti", claims.TokenID()),
		)
		return "", fmt.Errorf("token revoked: %w", errs.ErrUnauthorized)
	}

	// Role gate only when the route demands one.
	if requiredRole != "" {
		user, err := s.repo.User.FindByUsername(ctx, claims.Subject())
		if err != nil {
			return "", err
		}
		if user == nil {
			return "", fmt.Errorf("subject no longer exists: %w", errs.ErrUnauthorized)
		}
		if user.Role != requiredRole {
			return "", fmt.Errorf("%s role required: %w", requiredRole, errs.ErrForbidden)
		}
	}

	return claims.Subject(), nil
}
