package auth

import (
	"context"
	"errors"
	"time"

	"cardvault/internal/features/user"
	"cardvault/pkg/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, username, password, email string) (*user.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Me(ctx context.Context, userID string) (*user.User, error)
}

type AuthServiceImpl struct {
	UserRepo user.UserRepository
}

func NewAuthService(userRepo user.UserRepository) AuthService {
	return &AuthServiceImpl{
		UserRepo: userRepo,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, username, password, email string) (*user.User, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}

	_, err := s.UserRepo.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, errors.New("username already taken")
	case !errors.Is(err, mongo.ErrNoDocuments):
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newUser := user.User{
		Username:     username,
		Email:        email,
		Password:     string(hashed),
		Role:         user.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
		LastSignedIn: now,
	}

	if err := s.UserRepo.Create(ctx, &newUser); err != nil {
		return nil, err
	}

	return &newUser, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	usr, err := s.UserRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", errors.New("invalid credentials")
	}

	if bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)) != nil {
		return "", errors.New("invalid credentials")
	}

	_ = s.UserRepo.TouchLastSignedIn(ctx, usr.ID)

	token, err := utils.GenerateToken(usr.ID, usr.Role)
	if err != nil {
		return "", err
	}

	return token, nil
}

func (s *AuthServiceImpl) Me(ctx context.Context, userID string) (*user.User, error) {
	return s.UserRepo.Get(ctx, userID)
}
