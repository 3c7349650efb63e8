package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"storefront/models"
)

const tokenTTL = 24 * time.Hour

// IssueToken signs a session token carrying the user id and role.
func IssueToken(userID string, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
