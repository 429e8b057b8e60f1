package user

import (
	"crypto/subtle"
	"fmt"

	"bookreviews/pkg/session"
	"bookreviews/pkg/token"
)

type ServiceInterface interface {
	Register(username, password string) (*User, error)
	Login(username, password string) (*LoginResult, error)
}

type LoginResult struct {
	Token     string
	SessionID string
}

type Service struct {
	Repo     Repository
	Sessions session.Repository
	Tokens   token.Issuer
}

func NewService(repo Repository, sessions session.Repository, tokens token.Issuer) *Service {
	return &Service{Repo: repo, Sessions: sessions, Tokens: tokens}
}

func (s *Service) Register(username, password string) (*User, error) {
	if !s.Repo.UsernameAvailable(username) {
		return nil, ErrUserExists
	}

	user := &User{
		Username: username,
		Password: password,
	}

	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) Login(username, password string) (*LoginResult, error) {
	user, err := s.Repo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// passwords are stored and compared as plain text
	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.Tokens.Issue(user.Username)
	if err != nil {
		return nil, fmt.Errorf("token issue error: %w", err)
	}

	sess, err := s.Sessions.Create(user.Username, accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &LoginResult{Token: accessToken, SessionID: sess.ID}, nil
}
