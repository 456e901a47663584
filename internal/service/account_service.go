// Package service implements the application's domain logic on top of the
// repository layer.
package service

import (
	"context"

	"devconnect/internal/auth"
	"devconnect/internal/gravatar"
	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// AccountService handles registration, login, and account removal.
type AccountService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	postRepo    repository.PostRepository
	codec       *auth.Codec
}

// RegisterInput carries a registration request.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput carries a login request.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewAccountService returns a new AccountService.
func NewAccountService(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	postRepo repository.PostRepository,
	codec *auth.Codec,
) *AccountService {
	return &AccountService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		postRepo:    postRepo,
		codec:       codec,
	}
}

// Register creates a user and returns a session token embedding its ID.
// The avatar URL is derived from the email once, here, and never recomputed.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (string, error) {
	var fields []models.FieldError
	if err := validation.ValidateName(in.Name); err != nil {
		fields = append(fields, models.FieldError{Msg: err.Error(), Param: "name"})
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		fields = append(fields, models.FieldError{Msg: err.Error(), Param: "email"})
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		fields = append(fields, models.FieldError{Msg: err.Error(), Param: "password"})
	}
	if len(fields) > 0 {
		return "", models.NewValidationError(fields...)
	}

	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", models.NewConflictError("User already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hashed),
		Avatar:   gravatar.URL(in.Email),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return token, nil
}

// Login checks credentials and returns a fresh session token.
func (s *AccountService) Login(ctx context.Context, in LoginInput) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", models.NewValidationError(models.FieldError{Msg: "Invalid Credentials"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return "", models.NewValidationError(models.FieldError{Msg: "Invalid Credentials"})
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return token, nil
}

// CurrentUser returns the authenticated user, password excluded by the model.
func (s *AccountService) CurrentUser(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User not found")
	}
	return user, nil
}

// DeleteCascade removes the user's posts, profile, and user record, in that
// order. Each step is idempotent: parts already absent are not an error.
// The sequence is not transactional.
func (s *AccountService) DeleteCascade(ctx context.Context, userID uint) error {
	if err := s.postRepo.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if err := s.profileRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}
