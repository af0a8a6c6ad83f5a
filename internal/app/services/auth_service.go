package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/hostelops/washline/internal/app/models"
	"github.com/hostelops/washline/internal/app/models/dto"
	"github.com/hostelops/washline/internal/app/repositories"
	"github.com/hostelops/washline/internal/db"
	"github.com/hostelops/washline/internal/pkg/apperrors"
	"github.com/hostelops/washline/internal/pkg/auth"
)

var emailRegex = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// accountReader resolves account rows for login and token redemption
type accountReader interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// refreshTokenStore is the persistence surface for refresh tokens
type refreshTokenStore interface {
	CreateToken(ctx context.Context, token string, userID int64, expiresAt time.Time) error
	GetTokenByValue(ctx context.Context, token string) (*models.RefreshToken, error)
	RevokeToken(ctx context.Context, token string) error
}

// AuthService handles registration, login and token issuance
type AuthService struct {
	pool        *pgxpool.Pool
	userRepo    *repositories.UserRepository
	studentRepo *repositories.StudentRepository
	hostelRepo  *repositories.HostelRepository
	accounts    accountReader
	students    studentDirectory
	tokens      refreshTokenStore
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	pool *pgxpool.Pool,
	userRepo *repositories.UserRepository,
	studentRepo *repositories.StudentRepository,
	hostelRepo *repositories.HostelRepository,
	tokenRepo *repositories.TokenRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		pool:        pool,
		userRepo:    userRepo,
		studentRepo: studentRepo,
		hostelRepo:  hostelRepo,
		accounts:    userRepo,
		students:    studentRepo,
		tokens:      tokenRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

func (s *AuthService) validateRegistration(req *dto.RegisterRequest) error {
	if !emailRegex.MatchString(strings.ToLower(strings.TrimSpace(req.Email))) {
		return apperrors.NewValidationError("invalid email format")
	}
	if len(req.Password) < 8 {
		return apperrors.NewValidationError("password must be at least 8 characters long")
	}
	if strings.TrimSpace(req.RollNo) == "" {
		return apperrors.NewValidationError("roll number cannot be empty")
	}
	if strings.TrimSpace(req.BagCode) == "" {
		return apperrors.NewValidationError("bag code cannot be empty")
	}
	return nil
}

// Register creates a student account together with its profile and bag
// assignment. The three inserts run in one transaction so a duplicate roll
// number or bag code leaves nothing behind.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	if _, err := s.hostelRepo.GetHostelByID(ctx, req.HostelID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrHostelNotFound
		}
		return nil, fmt.Errorf("error checking hostel: %w", err)
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hashedPassword,
		Name:     req.Name,
		RoleType: models.RoleStudent,
	}
	student := &models.Student{
		RollNo:   req.RollNo,
		HostelID: req.HostelID,
		RoomNo:   req.RoomNo,
		PhoneNo:  req.PhoneNo,
	}

	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		userID, err := s.userRepo.WithTx(tx).CreateUser(ctx, user)
		if err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("user creation error: %w", err)
		}

		student.UserID = userID
		txStudents := s.studentRepo.WithTx(tx)
		studentID, err := txStudents.CreateStudent(ctx, student)
		if err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return apperrors.ErrRollNoExists
			}
			return fmt.Errorf("student creation error: %w", err)
		}

		assignment := &models.BagAssignment{BagCode: req.BagCode, StudentID: studentID}
		if _, err := txStudents.CreateBagAssignment(ctx, assignment); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return apperrors.NewConflictError("bag code already assigned")
			}
			return fmt.Errorf("bag assignment error: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", user.Email).Str("rollNo", student.RollNo).Msg("Student registered")

	return s.generateTokenResponse(ctx, user, student.RollNo)
}

// Login authenticates against one portal; an account of the other role is
// rejected with the same error as a wrong password
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.accounts.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	wantRole := models.RoleStudent
	if req.Role == "staff" {
		wantRole = models.RoleStaff
	}
	if user.RoleType != wantRole {
		return nil, apperrors.ErrInvalidCredentials
	}

	rollNo, err := s.rollNoFor(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", user.Email).Str("role", string(user.RoleType)).Msg("User logged in")

	return s.generateTokenResponse(ctx, user, rollNo)
}

// RefreshToken redeems a stored refresh token for a new token pair. Tokens
// are single use: the presented token is revoked before the new pair is
// issued, so a replayed token fails.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	stored, err := s.tokens.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, fmt.Errorf("error looking up refresh token: %w", err)
	}

	if stored.IsRevoked {
		return nil, apperrors.ErrTokenInvalid
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = s.tokens.RevokeToken(ctx, refreshToken)
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.accounts.GetUserByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, fmt.Errorf("error getting user for refresh token: %w", err)
	}

	if err := s.tokens.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("error revoking refresh token: %w", err)
	}

	rollNo, err := s.rollNoFor(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Msg("Refresh token redeemed")

	return s.generateTokenResponse(ctx, user, rollNo)
}

func (s *AuthService) rollNoFor(ctx context.Context, user *models.User) (string, error) {
	if user.RoleType != models.RoleStudent {
		return "", nil
	}
	student, err := s.students.GetStudentByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", apperrors.ErrStudentNotFound
		}
		return "", fmt.Errorf("error getting student profile: %w", err)
	}
	return student.RollNo, nil
}

func (s *AuthService) generateTokenResponse(ctx context.Context, user *models.User, rollNo string) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.RoleType), rollNo)
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	if err := s.tokens.CreateToken(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		User: dto.UserResponse{
			ID:       user.ID,
			Email:    user.Email,
			Name:     user.Name,
			RoleType: string(user.RoleType),
			RollNo:   rollNo,
		},
	}, nil
}
