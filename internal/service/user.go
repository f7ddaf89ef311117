package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Vipul-2220/EventMate/internal/auth"
	"github.com/Vipul-2220/EventMate/internal/domain"
	"github.com/Vipul-2220/EventMate/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type UserService struct {
	userRepo  ports.UserRepo
	eventRepo ports.EventRepo
	jwtSecret string
	tokenTTL  time.Duration
	logger    logger.Logger
}

func NewUserService(
	userRepo ports.UserRepo,
	eventRepo ports.EventRepo,
	jwtSecret string,
	tokenTTL time.Duration,
	logger logger.Logger,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		eventRepo: eventRepo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

func (s *UserService) Signup(ctx context.Context, input domain.SignupInput) (*domain.User, string, error) {
	if input.Name == "" {
		return nil, "", fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !strings.Contains(input.Email, "@") {
		return nil, "", fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}
	if len(input.Password) < 6 {
		return nil, "", fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Email:          strings.ToLower(input.Email),
		PasswordHash:   string(hash),
		Role:           domain.RoleUser,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err = s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := auth.NewToken(s.jwtSecret, user.ID, user.Role, s.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user signed up", logger.String("user_id", user.ID))

	return user, token, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("get user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := auth.NewToken(s.jwtSecret, user.ID, user.Role, s.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetProfile resolves the user together with the events they organize and
// the events they are registered for.
func (s *UserService) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	organized, err := s.eventRepo.ListByOrganizer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list organized events: %w", err)
	}

	registered, err := s.eventRepo.ListRegisteredByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list registered events: %w", err)
	}

	return &domain.Profile{
		User:       *user,
		Organized:  organized,
		Registered: registered,
	}, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}

// Update applies profile edits. Users may edit themselves; role and
// verification flags are applied only for admin callers.
func (s *UserService) Update(ctx context.Context, targetID, actorID string, actorRole domain.Role, input domain.UpdateUserInput) (*domain.User, error) {
	if targetID != actorID && actorRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = strings.ToLower(*input.Email)
	}
	if actorRole == domain.RoleAdmin {
		if input.Role != nil {
			user.Role = *input.Role
		}
		if input.IsVerified != nil {
			user.IsVerified = *input.IsVerified
		}
	}

	if err = s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}

// Delete removes the user account; the store cascade drops the user from
// every event's attendee set.
func (s *UserService) Delete(ctx context.Context, targetID string, actorRole domain.Role) error {
	if actorRole != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	if err := s.userRepo.Delete(ctx, targetID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.logger.Info("user deleted", logger.String("user_id", targetID))

	return nil
}
