package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aeroclub-norte/turnero-api/internal/auth"
	"github.com/aeroclub-norte/turnero-api/internal/dto"
	"github.com/aeroclub-norte/turnero-api/internal/models"
	"github.com/aeroclub-norte/turnero-api/internal/store"
)

// ErrInvalidCredentials is returned for every failed login. It carries no
// detail about which part of the credential pair was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService resolves credentials to session identities and ends sessions.
type AuthService interface {
	Login(ctx context.Context, username, secret string) (dto.LoginResponse, error)
	Logout(tokenID string)
}

type authService struct {
	students      *store.StudentStore
	issuer        *auth.TokenIssuer
	revocations   *auth.Revocations
	adminUsername string
	adminSecret   string
	logger        zerolog.Logger
}

// NewAuthService constructs the auth service. The admin credential pair is
// a single fixed value from configuration.
func NewAuthService(students *store.StudentStore, issuer *auth.TokenIssuer, revocations *auth.Revocations, adminUsername, adminSecret string, logger zerolog.Logger) AuthService {
	return &authService{
		students:      students,
		issuer:        issuer,
		revocations:   revocations,
		adminUsername: adminUsername,
		adminSecret:   adminSecret,
		logger:        logger.With().Str("component", "auth_service").Logger(),
	}
}

// Login checks the fixed admin credential first, then scans the student
// collection in insertion order for a derived-username match. Credentials
// are compared in clear text against stored values; that is the documented
// behaviour, not an oversight.
func (s *authService) Login(ctx context.Context, username, secret string) (dto.LoginResponse, error) {
	username = strings.TrimSpace(username)
	secret = strings.TrimSpace(secret)
	if username == "" || secret == "" {
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	if username == s.adminUsername && secret == s.adminSecret {
		return s.startSession(models.SessionIdentity{
			Username: s.adminUsername,
			CohortID: models.AdminCohortID,
			IsAdmin:  true,
		})
	}

	wanted := strings.ToLower(username)
	for _, student := range s.students.List() {
		if student.DerivedUsername() == wanted && student.NationalID == secret {
			return s.startSession(models.SessionIdentity{
				Username: student.FullName(),
				CohortID: student.CohortID,
				IsAdmin:  false,
			})
		}
	}

	s.logger.Info().Str("username", username).Msg("login rejected")
	return dto.LoginResponse{}, ErrInvalidCredentials
}

func (s *authService) startSession(identity models.SessionIdentity) (dto.LoginResponse, error) {
	token, _, err := s.issuer.Issue(identity)
	if err != nil {
		return dto.LoginResponse{}, err
	}

	s.logger.Info().
		Str("username", identity.Username).
		Bool("is_admin", identity.IsAdmin).
		Msg("session started")

	return dto.LoginResponse{Token: token, User: identity}, nil
}

// Logout revokes the session token unconditionally. Revoking an unknown or
// already revoked token id is a no-op.
func (s *authService) Logout(tokenID string) {
	s.revocations.Revoke(tokenID)
}
