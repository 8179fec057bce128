// internal/service/auth/auth.go
package auth

import (
	"context"
	"fmt"

	"fieldserve/internal/domain/company"
	"fieldserve/internal/domain/user"
	xerrors "fieldserve/internal/pkg/errors"
	"fieldserve/internal/pkg/session"
	"fieldserve/internal/service/tenant"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo user.Repository
	resolver *tenant.Resolver
	sessions *session.Manager
	logger   *zap.Logger
}

func NewAuthService(userRepo user.Repository, resolver *tenant.Resolver, sessions *session.Manager, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		resolver: resolver,
		sessions: sessions,
		logger:   logger,
	}
}

// Login authenticates by username and password and opens a session.
// Unknown username and wrong password surface identically so usernames
// cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, req *user.LoginRequest) (*user.User, *session.Data, error) {
	u, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			return nil, nil, xerrors.ErrUnauthorized
		}
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, nil, xerrors.ErrUnauthorized
	}

	// A user may log in without a membership; companyID 0 in the session
	// means "no tenant access" and every scoped endpoint rejects it.
	companyID, err := s.resolver.CompanyForUser(ctx, u.ID)
	if err != nil && !xerrors.Is(err, xerrors.ErrForbidden) {
		return nil, nil, err
	}

	sess, err := s.sessions.Create(ctx, u.ID, companyID, u.Username, u.Role)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("user logged in",
		zap.Int64("user_id", u.ID),
		zap.Int64("company_id", companyID),
	)

	return u, sess, nil
}

// Me loads the current user for an already-resolved session.
func (s *AuthService) Me(ctx context.Context, userID int64) (*user.MeResponse, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	companyID, err := s.resolver.CompanyForUser(ctx, userID)
	if err != nil && !xerrors.Is(err, xerrors.ErrForbidden) {
		return nil, err
	}

	return &user.MeResponse{User: u, CompanyID: companyID}, nil
}

// Logout destroys the session; already-destroyed tokens are fine.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

// EnsureDemoAccount provisions the demo tenant and owner account when the
// SEED_DEMO flag is set. Safe to run on every startup.
func (s *AuthService) EnsureDemoAccount(ctx context.Context, companyRepo company.Repository) error {
	const (
		demoUsername = "owner1"
		demoPassword = "demo123"
		demoSlug     = "demo-hvac"
	)

	if _, err := s.userRepo.FindByUsername(ctx, demoUsername); err == nil {
		return nil
	} else if !xerrors.Is(err, xerrors.ErrNotFound) {
		return err
	}

	co, err := companyRepo.FindBySlug(ctx, demoSlug)
	if xerrors.Is(err, xerrors.ErrNotFound) {
		co = &company.Company{Name: "Demo HVAC Co", Slug: demoSlug}
		if err := companyRepo.Create(ctx, co); err != nil {
			return fmt.Errorf("failed to create demo company: %w", err)
		}
	} else if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	u := &user.User{
		Username:     demoUsername,
		PasswordHash: string(hash),
		DisplayName:  "Demo Owner",
		Email:        "owner@demo-hvac.test",
		Role:         user.RoleOwner,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return fmt.Errorf("failed to create demo user: %w", err)
	}

	if err := s.userRepo.CreateMembership(ctx, &user.Membership{
		UserID:    u.ID,
		CompanyID: co.ID,
		Role:      user.RoleOwner,
	}); err != nil {
		return err
	}

	s.logger.Info("demo account provisioned",
		zap.String("username", demoUsername),
		zap.Int64("company_id", co.ID),
	)
	return nil
}
