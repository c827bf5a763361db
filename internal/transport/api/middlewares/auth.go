package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-auction/internal/service/tokens"
)

var ErrTokenNotExist = errors.New("token not exist")

const CurrentUserIDKey = "currentUserID"

// AuthRequired проверяет JWT из заголовка Authorization и кладет id юзера в
// контекст запроса (поле CurrentUserIDKey). Ядру от сессии нужен только
// стабильный идентификатор юзера.
func AuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := resolveUser(c, jwtTokenSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			if !errors.Is(err, ErrTokenNotExist) {
				_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			}
			return
		}
		c.Set(CurrentUserIDKey, userID)
		c.Next()
	}
}

func resolveUser(c *gin.Context, jwtTokenSecret []byte) (int64, error) {
	tokenHeader := c.GetHeader("Authorization")
	tokenStr, found := strings.CutPrefix(tokenHeader, "Bearer ")
	if !found || tokenStr == "" {
		return 0, ErrTokenNotExist
	}
	return tokens.ResolveUserID(tokenStr, jwtTokenSecret) //nolint:wrapcheck
}
