package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dan9191/thingful-users/internal/models"
	"github.com/Dan9191/thingful-users/internal/repository"
	"github.com/Dan9191/thingful-users/internal/utils"
	"github.com/sirupsen/logrus"
)

var (
	// ErrUserNameTaken is returned when the requested user_name belongs to another user
	ErrUserNameTaken = errors.New("username already taken")
	// ErrUserNotFound is returned when a requested user does not exist
	ErrUserNotFound = errors.New("user not found")
)

// ValidationError reports a request that failed input validation.
// Message is safe to return to the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RegisterInput is the registration payload
type RegisterInput struct {
	UserName string
	Password string
	FullName string
	NickName string
}

// Service handles business logic
type Service struct {
	repo *repository.Repository
	log  *logrus.Logger
}

// NewService initializes a new service
func NewService(repo *repository.Repository, log *logrus.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Register validates the input, checks user_name availability, hashes the password
// and stores the new user.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.PublicUser, error) {
	for _, field := range []struct{ name, value string }{
		{"user_name", in.UserName},
		{"password", in.Password},
		{"full_name", in.FullName},
	} {
		if field.value == "" {
			return nil, &ValidationError{Message: fmt.Sprintf("Missing '%s' in request body", field.name)}
		}
	}

	if msg := utils.ValidatePassword(in.Password); msg != "" {
		return nil, &ValidationError{Message: msg}
	}

	taken, err := s.repo.HasUserWithUserName(ctx, in.UserName)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUserNameTaken
	}

	hashedPassword, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.InsertUser(ctx, models.NewUser{
		UserName: in.UserName,
		Password: hashedPassword,
		FullName: in.FullName,
		NickName: in.NickName,
	})
	if errors.Is(err, repository.ErrDuplicateUserName) {
		s.log.WithField("user_name", in.UserName).Info("user_name claimed concurrently")
		return nil, ErrUserNameTaken
	}
	if err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %d", user.ID)
	public := models.SerializeUser(user)
	return &public, nil
}

// GetUser returns the public view of the user with the given id
func (s *Service) GetUser(ctx context.Context, id int64) (*models.PublicUser, error) {
	user, err := s.repo.FindUserByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	public := models.SerializeUser(user)
	return &public, nil
}
