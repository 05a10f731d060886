package services

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-event-listing/internal/logger"
	"github.com/sbilibin2017/gw-event-listing/internal/models"
	"github.com/sbilibin2017/gw-event-listing/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error) // Returns nil when absent
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user *models.User) error // Assigns the ID
}

// HostCreator provisions host profiles for newly registered hosts.
type HostCreator interface {
	CreateHost(ctx context.Context, user *models.User) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, principal models.Principal) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	hosts  HostCreator
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, hosts HostCreator, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		hosts:  hosts,
		jwt:    jwt,
	}
}

// Register stores a new user with a bcrypt hash of password.
// Hosts also get their host profile; run it inside one transaction to keep both rows together.
func (svc *AuthService) Register(ctx context.Context, user *models.User, password string) error {
	log := logger.FromContext(ctx)

	existing, err := svc.reader.GetByEmail(ctx, user.Email)
	if err != nil {
		log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if existing != nil {
		log.Warnw("user already exists", "email", user.Email)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return err
	}
	user.PasswordHash = string(hashedPassword)

	if err := svc.writer.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			log.Warnw("user already exists", "email", user.Email)
			return ErrUserAlreadyExists
		}
		log.Errorw("failed to save user", "err", err)
		return err
	}

	switch user.Role {
	case models.RoleHost:
		if err := svc.hosts.CreateHost(ctx, user); err != nil {
			log.Errorw("failed to create host profile", "user_id", user.ID, "err", err)
			return err
		}
	case models.RoleMember, models.RoleAdmin:
	}

	log.Infow("user registered", "user_id", user.ID, "role", user.Role)
	return nil
}

// Verify checks the credentials and returns the authenticated principal.
func (svc *AuthService) Verify(ctx context.Context, email, password string) (*models.Principal, error) {
	user, err := svc.verify(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return &models.Principal{UserID: user.ID, Email: user.Email, Role: user.Role}, nil
}

// Login authenticates a user and returns a JWT token with the user summary.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	user, err := svc.verify(ctx, email, password)
	if err != nil {
		return nil, err
	}

	token, err := svc.jwt.Generate(ctx, models.Principal{UserID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to generate JWT", "err", err)
		return nil, err
	}

	return &models.LoginResult{
		Token: token,
		User: models.SignedInUser{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			UserType:  user.Role,
		},
	}, nil
}

func (svc *AuthService) verify(ctx context.Context, email, password string) (*models.User, error) {
	log := logger.FromContext(ctx)

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		log.Warnw("user does not exist", "email", email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warnw("invalid credentials", "email", email)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
