// Package jwt реализует выпуск и парсинг JWT токенов сессии.
//
// SessionClaims расширяет стандартные claims JWT идентификатором
// и именем пользователя. Набор минимальный и ревизуемый: ни email,
// ни ролей, ни произвольных полей в токен не попадает.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims описывает данные пользователя, хранящиеся в токене.
// Имена полей следуют соглашению JWT: nameid — идентификатор субъекта,
// unique_name — его имя.
type SessionClaims struct {
	NameID               string `json:"nameid"`      // Идентификатор пользователя
	UniqueName           string `json:"unique_name"` // Имя пользователя
	jwt.RegisteredClaims        // Встроенные стандартные claims JWT (ExpiresAt, IssuedAt и пр.)
}

// GenerateToken выпускает токен с заданными uid и username, подписывая
// его секретным ключом алгоритмом HS512. Срок действия — ровно TokenTTL
// от момента выпуска.
func (j *MakerImpl) GenerateToken(userUID, username string) (string, error) {
	const op = "jwt.GenerateToken"
	now := time.Now()
	claims := SessionClaims{
		NameID:     userUID,
		UniqueName: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}

// ParseToken парсит токен, проверяет подпись и срок действия,
// возвращает SessionClaims с данными, если токен корректен.
// Алгоритм подписи ограничен HS512: токен с другим заголовком alg
// отклоняется до проверки подписи.
func (j *MakerImpl) ParseToken(tokenStr string) (*SessionClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(_ *jwt.Token) (any, error) {
		return j.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
