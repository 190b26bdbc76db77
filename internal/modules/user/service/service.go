package service

import (
	"context"

	"anoa.com/forumapi/internal/entity"
	userDto "anoa.com/forumapi/internal/modules/user/dto"
	userRepo "anoa.com/forumapi/internal/modules/user/repository"
	"anoa.com/forumapi/pkg/apperror"
	"anoa.com/forumapi/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

const msgWrongCredentials = "kredensial yang anda masukkan salah"

type AuthService interface {
	Register(ctx context.Context, req userDto.RegisterUserRequest) (*userDto.RegisteredUser, error)
	Login(ctx context.Context, req userDto.LoginInput) (*userDto.AuthResponse, error)
	Refresh(ctx context.Context, req userDto.RefreshTokenInput) (*userDto.RefreshResponse, error)
	Logout(ctx context.Context, req userDto.RefreshTokenInput) error
}

type authService struct {
	repo       userRepo.UserRepository
	authRepo   userRepo.AuthenticationRepository
	tokens     *token.Manager
	bcryptCost int
}

func NewAuthService(repo userRepo.UserRepository, authRepo userRepo.AuthenticationRepository, tokens *token.Manager) AuthService {
	return &authService{
		repo:       repo,
		authRepo:   authRepo,
		tokens:     tokens,
		bcryptCost: bcrypt.DefaultCost,
	}
}

func (s *authService) Register(ctx context.Context, req userDto.RegisterUserRequest) (*userDto.RegisteredUser, error) {
	if err := s.repo.VerifyAvailableUsername(ctx, req.Username); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: req.Username,
		Password: string(hashed),
		Fullname: req.Fullname,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &userDto.RegisteredUser{
		ID:       user.ID,
		Username: user.Username,
		Fullname: user.Fullname,
	}, nil
}

func (s *authService) Login(ctx context.Context, req userDto.LoginInput) (*userDto.AuthResponse, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperror.Unauthorized(msgWrongCredentials)
	}

	accessToken, err := s.tokens.CreateAccessToken(user.ID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.CreateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.authRepo.AddToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return &userDto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *authService) Refresh(ctx context.Context, req userDto.RefreshTokenInput) (*userDto.RefreshResponse, error) {
	userID, err := s.tokens.VerifyRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, err
	}

	if err := s.authRepo.CheckAvailabilityToken(ctx, req.RefreshToken); err != nil {
		return nil, err
	}

	accessToken, err := s.tokens.CreateAccessToken(userID)
	if err != nil {
		return nil, err
	}

	return &userDto.RefreshResponse{AccessToken: accessToken}, nil
}

func (s *authService) Logout(ctx context.Context, req userDto.RefreshTokenInput) error {
	if err := s.authRepo.CheckAvailabilityToken(ctx, req.RefreshToken); err != nil {
		return err
	}
	return s.authRepo.DeleteToken(ctx, req.RefreshToken)
}
