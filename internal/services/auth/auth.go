// Package auth содержит логику бизнес-уровня для регистрации,
// входа и проверки токенов сессии.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/identity-service/internal/lib/jwt"
	"github.com/magabrotheeeer/identity-service/internal/lib/password"
	"github.com/magabrotheeeer/identity-service/internal/models"
	"github.com/magabrotheeeer/identity-service/internal/storage/repository"
)

// ErrInvalidCredentials возвращается при любой неудаче входа.
// Неизвестный пользователь и неверный пароль намеренно неразличимы,
// чтобы по ответу нельзя было перебирать учётные записи.
var ErrInvalidCredentials = errors.New("invalid login attempt")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его UID.
	// Уникальность username и email проверяется атомарно на стороне
	// хранилища; при конфликте возвращается repository.ErrUsernameTaken
	// или repository.ErrEmailTaken.
	CreateUser(ctx context.Context, user models.User) (string, error)

	// GetUserByUsername возвращает пользователя по имени
	// или repository.ErrUserNotFound.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByEmail возвращает пользователя по email
	// или repository.ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Service отвечает за регистрацию, вход и валидацию токенов сессии.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// New создает новый экземпляр Service.
func New(users UserRepository, jwtMaker jwt.Maker) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя и сразу выпускает для него токен:
// отдельного шага подтверждения нет, регистрация и первая сессия —
// одна операция с точки зрения вызывающего.
//
// Ошибки дубликатов прокидываются как есть, их раскладывает по полям
// HTTP-обработчик.
func (s *Service) Register(ctx context.Context, username, fullName, email, rawPassword string) (string, error) {
	const op = "services.auth.Register"

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Username:     username,
		FullName:     fullName,
		Email:        email,
		PasswordHash: hashed,
	}
	uid, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	token, err := s.jwtMaker.GenerateToken(uid, username)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// Login проверяет учётные данные и выпускает токен сессии.
// Идентификатор сначала ищется как username, затем как email.
// Счётчиков неудачных попыток и блокировок нет — как нет их
// и в остальной системе; при необходимости это внешняя забота.
func (s *Service) Login(ctx context.Context, usernameOrEmail, rawPassword string) (string, error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByUsername(ctx, usernameOrEmail)
	if errors.Is(err, repository.ErrUserNotFound) {
		user, err = s.users.GetUserByEmail(ctx, usernameOrEmail)
	}
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.UID, user.Username)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// ValidateToken проверяет токен сессии и возвращает данные пользователя
// из claims. Токен самодостаточен: обращения к хранилищу нет.
func (s *Service) ValidateToken(_ context.Context, token string) (*models.User, error) {
	const op = "services.auth.ValidateToken"
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.User{
		UID:      claims.NameID,
		Username: claims.UniqueName,
	}, nil
}
