package repository

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"

	"anoa.com/forumapi/internal/entity"
	"anoa.com/forumapi/pkg/apperror"
	"gorm.io/gorm"
)

type UserRepository interface {
	VerifyAvailableUsername(ctx context.Context, username string) error
	Create(ctx context.Context, user *entity.User) error
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

type AuthenticationRepository interface {
	AddToken(ctx context.Context, token string) error
	CheckAvailabilityToken(ctx context.Context, token string) error
	DeleteToken(ctx context.Context, token string) error
}

type userRepository struct {
	db    *gorm.DB
	newID entity.IDGenerator
}

var _ UserRepository = (*userRepository)(nil)

func NewUserRepository(db *gorm.DB, newID entity.IDGenerator) UserRepository {
	return &userRepository{db: db, newID: newID}
}

func (r *userRepository) VerifyAvailableUsername(ctx context.Context, username string) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return apperror.BadRequest("username tidak tersedia")
	}
	return nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = r.newID()
	}
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Limit(1).
		Find(&users).Error; err != nil {
		return nil, err
	}

	if len(users) == 0 {
		return nil, apperror.BadRequest("username tidak ditemukan")
	}
	return &users[0], nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&users).Error; err != nil {
		return nil, err
	}

	if len(users) == 0 {
		return nil, apperror.NotFound("user tidak ditemukan")
	}
	return &users[0], nil
}

type authenticationRepository struct {
	db *gorm.DB
}

var _ AuthenticationRepository = (*authenticationRepository)(nil)

func NewAuthenticationRepository(db *gorm.DB) AuthenticationRepository {
	return &authenticationRepository{db: db}
}

func (r *authenticationRepository) AddToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Create(&entity.Authentication{Token: token}).Error
}

func (r *authenticationRepository) CheckAvailabilityToken(ctx context.Context, token string) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Authentication{}).
		Where("token = ?", token).
		Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return apperror.BadRequest("refresh token tidak ditemukan di database")
	}
	return nil
}

func (r *authenticationRepository) DeleteToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&entity.Authentication{}).Error
}
