// Package jwt реализует выпуск и парсинг JWT токенов сессии.
//
// Maker определяет интерфейс для создания и проверки токенов.
// MakerImpl — конкретная реализация на симметричном ключе HMAC-SHA-512.
package jwt

import (
	"errors"
	"fmt"
	"time"
)

// TokenTTL время жизни токена. Срок фиксированный: токен самодостаточен,
// сервер его не хранит и не отзывает, валидность определяется только
// подписью и сроком действия.
const TokenTTL = 7 * 24 * time.Hour

// MinKeyBytes минимальная длина ключа подписи для HMAC-SHA-512.
const MinKeyBytes = 32

// ErrKeyTooShort возвращается конструктором при ключе короче 32 байт.
var ErrKeyTooShort = errors.New("jwt: signing key is shorter than 32 bytes")

// Maker описывает интерфейс для выпуска и парсинга токенов сессии.
type Maker interface {
	// GenerateToken выпускает токен с uid и username пользователя.
	GenerateToken(userUID, username string) (string, error)
	// ParseToken проверяет подпись и срок действия, возвращает claims.
	ParseToken(tokenStr string) (*SessionClaims, error)
}

// MakerImpl реализует интерфейс Maker на секретном ключе процесса.
// Ключ задаётся один раз при старте и далее только читается, поэтому
// выпуск токенов безопасен при конкурентных вызовах.
type MakerImpl struct {
	secretKey []byte // Секретный ключ для подписи токенов
}

// NewJWTMaker создаёт новый экземпляр MakerImpl.
// Возвращает ErrKeyTooShort, если ключ не дотягивает до запаса
// прочности HMAC-SHA-512 — это ошибка конфигурации, сервис с таким
// ключом стартовать не должен.
func NewJWTMaker(secretKey string) (*MakerImpl, error) {
	const op = "jwt.NewJWTMaker"
	if len(secretKey) < MinKeyBytes {
		return nil, fmt.Errorf("%s: %w", op, ErrKeyTooShort)
	}
	return &MakerImpl{secretKey: []byte(secretKey)}, nil
}
