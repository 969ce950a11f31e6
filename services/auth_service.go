package services

import (
	"context"

	"school-store/models"
	"school-store/utils"
)

// UserStore is the slice of the user repository the auth flows need.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthUser, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: hashed,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.authUser(user)
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthUser, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}

	return s.authUser(user)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID int, req models.UpdateProfileRequest) (*models.AuthUser, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Email != "" && req.Email != user.Email {
		taken, err := s.users.FindByEmail(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, ErrEmailTaken
		}
		user.Email = req.Email
	}
	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Password != "" {
		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.authUser(user)
}

// authUser builds the wire shape with a freshly signed token.
func (s *AuthService) authUser(user *models.User) (*models.AuthUser, error) {
	token, err := utils.GenerateToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, err
	}
	return &models.AuthUser{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		IsAdmin:  user.IsAdmin,
		Token:    token,
	}, nil
}
