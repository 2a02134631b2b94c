package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/esraghu/milk-delivery-app/domain"
	"github.com/esraghu/milk-delivery-app/entities"
	"github.com/esraghu/milk-delivery-app/internal/utils/mailing"
	"github.com/esraghu/milk-delivery-app/pkg/jwt"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Register(ctx context.Context, req domain.SignupRequest, role string) (domain.UserResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		ListUsers(ctx context.Context) ([]domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrUserNotFound
		}
		return domain.LoginResponse{}, err
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func (s *userService) Register(ctx context.Context, req domain.SignupRequest, role string) (domain.UserResponse, error) {
	if _, err := s.userRepository.GetByEmail(ctx, req.Email); err == nil {
		return domain.UserResponse{}, domain.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, err
	}

	user := &entities.User{
		ID:          uuid.New(),
		Name:        req.Name,
		Email:       req.Email,
		HouseNumber: req.HouseNumber,
		Address:     req.Address,
		Role:        role,
	}

	if err := s.userRepository.Create(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	// Welcome mail is best effort; signup must not fail on SMTP trouble.
	go func() {
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>Your DailyDoodh account is ready. Set up a subscription and fresh dairy shows up at %s every morning.</p>",
			user.Name, user.HouseNumber,
		)
		_ = mailing.SendMail(user.Email, "Welcome to DailyDoodh", body)
	}()

	return toUserResponse(user), nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.UserResponse, error) {
	users, err := s.userRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, toUserResponse(user))
	}
	return responses, nil
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:          user.ID.String(),
		Name:        user.Name,
		Email:       user.Email,
		HouseNumber: user.HouseNumber,
		Address:     user.Address,
		Role:        user.Role,
		CreatedAt:   user.CreatedAt,
	}
}
