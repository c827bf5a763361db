// Package tokens разбирает JWT сессии, выдавая стабильный идентификатор юзера
// для операций ставок, платежей и кошелька. Сама аутентификация живет во
// внешнем сервисе; ядру достаточно валидировать подпись и достать ID.
package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenExpired = errors.New("token expired")

type UserClaims struct {
	jwt.RegisteredClaims
	ID int64
}

// GenerateUserJWT выпускает токен с ID юзера. Используется тестами и
// служебными утилитами; в проде токены выпускает сервис аутентификации.
func GenerateUserJWT(id int64, expire time.Duration, key []byte) (string, error) {
	userClaims := UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
		},
		ID: id,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, userClaims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating user jwt token: %s", err.Error())
	}
	return tokenString, nil
}

// ResolveUserID валидирует токен и возвращает ID юзера из claims.
func ResolveUserID(tokenString string, key []byte) (int64, error) {
	var claims UserClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, fmt.Errorf("parsing jwt token: %w", err)
	}
	return claims.ID, nil
}
