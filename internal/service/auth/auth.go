package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"fitcenter-backend/internal/domain/models"
	"fitcenter-backend/internal/repository"
	"fitcenter-backend/pkg/apperrors"
	"fitcenter-backend/pkg/token"
)

const resetTokenTTL = 15 * time.Minute

// Service implements the three account flows: coach signup/signin,
// member register/login/reset, and the legacy staff credential check.
type Service struct {
	coaches repository.CoachStore
	users   repository.UserStore
	staff   repository.StaffStore
	signins repository.SignInStore
	tokens  *token.Manager
	logger  *zap.Logger
}

func NewService(coaches repository.CoachStore, users repository.UserStore, staff repository.StaffStore, signins repository.SignInStore, tokens *token.Manager, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		coaches: coaches,
		users:   users,
		staff:   staff,
		signins: signins,
		tokens:  tokens,
		logger:  logger,
	}
}

// HashPassword produces a bcrypt digest at the default cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperrors.Internal(err)
	}
	return string(hash), nil
}

// CoachSignup hashes the password and creates the coach account.
func (s *Service) CoachSignup(ctx context.Context, coach *models.Coach, password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	coach.PasswordHash = hash
	return s.coaches.Create(ctx, coach)
}

// CoachSignin verifies credentials and issues a 1h coach token.
func (s *Service) CoachSignin(ctx context.Context, email, password string) (string, *models.Coach, error) {
	coach, err := s.coaches.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return "", nil, apperrors.Authf("invalid email or password")
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(coach.PasswordHash), []byte(password)) != nil {
		return "", nil, apperrors.Authf("invalid email or password")
	}

	tok, err := s.tokens.Generate(coach.ID.Hex(), coach.Email, token.AudienceCoach)
	if err != nil {
		return "", nil, apperrors.Internal(err)
	}
	return tok, coach, nil
}

// RegisterMember hashes the password, creates the account and issues a
// 30d member token.
func (s *Service) RegisterMember(ctx context.Context, user *models.User, password string) (string, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}
	user.PasswordHash = hash

	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}

	tok, err := s.tokens.Generate(user.ID.Hex(), user.Email, token.AudienceMember)
	if err != nil {
		return "", apperrors.Internal(err)
	}
	return tok, nil
}

// LoginMember verifies credentials and issues a 30d member token.
func (s *Service) LoginMember(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return "", nil, apperrors.Authf("invalid email or password")
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, apperrors.Authf("invalid email or password")
	}

	tok, err := s.tokens.Generate(user.ID.Hex(), user.Email, token.AudienceMember)
	if err != nil {
		return "", nil, apperrors.Internal(err)
	}
	return tok, user, nil
}

// ForgotPassword attaches a short-lived reset token to the account and
// returns it. There is no mailer; the caller delivers the token.
func (s *Service) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	resetToken := uuid.New().String()
	expiry := time.Now().Add(resetTokenTTL)
	if err := s.users.SetResetToken(ctx, user.ID.Hex(), resetToken, expiry); err != nil {
		return "", err
	}
	return resetToken, nil
}

// ResetPassword consumes a reset token and replaces the password.
func (s *Service) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	user, err := s.users.FindByResetToken(ctx, resetToken)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return apperrors.Validationf("invalid or expired reset token")
		}
		return err
	}

	if time.Now().After(user.ResetTokenExpiry) {
		return apperrors.Validationf("invalid or expired reset token")
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePasswordHash(ctx, user.ID.Hex(), hash)
}

// StaffSignIn checks staff credentials and appends a session record
// either way. Stored digests are bcrypt; a legacy plaintext record that
// still matches by equality is migrated to bcrypt on the spot, with a
// warning logged.
func (s *Service) StaffSignIn(ctx context.Context, username, password string) (*models.StaffMember, error) {
	staff, err := s.staff.FindByUsername(ctx, username)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			s.recordSignIn(ctx, username, false)
			return nil, apperrors.Authf("invalid username or password")
		}
		return nil, err
	}

	ok := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)) == nil
	if !ok && !strings.HasPrefix(staff.PasswordHash, "$2") && staff.PasswordHash == password {
		// Legacy record stored before hashing was introduced.
		s.logger.Warn("migrating legacy plaintext staff credential", zap.String("username", username))
		hash, herr := HashPassword(password)
		if herr == nil {
			if uerr := s.staff.UpdatePasswordHash(ctx, staff.ID.Hex(), hash); uerr != nil {
				s.logger.Error("failed migrating staff credential", zap.Error(uerr))
			}
		}
		ok = true
	}

	s.recordSignIn(ctx, username, ok)
	if !ok {
		return nil, apperrors.Authf("invalid username or password")
	}
	return staff, nil
}

// RecordSignInSession appends a session document without checking
// credentials, mirroring the legacy insert endpoint.
func (s *Service) RecordSignInSession(ctx context.Context, record *models.SignInRecord) error {
	return s.signins.Create(ctx, record)
}

func (s *Service) recordSignIn(ctx context.Context, username string, succeeded bool) {
	rec := &models.SignInRecord{Username: username, Succeeded: succeeded}
	if err := s.signins.Create(ctx, rec); err != nil {
		s.logger.Error("failed recording signin session", zap.Error(err))
	}
}
