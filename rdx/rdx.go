package rdx

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Conn is nil when REDIS_ADDR is unset; callers degrade to stateless JWTs.
var Conn *redis.Client

var Ctx = context.Background()

const tokenTTL = 24 * time.Hour

func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("ℹ️ REDIS_ADDR not set, sign-out revocation disabled")
		return
	}

	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	if err := Conn.Ping(Ctx).Err(); err != nil {
		log.Printf("❌ Redis unreachable: %v", err)
		Conn = nil
		return
	}
	log.Println("✅ Redis connected")
}

func StoreToken(userID, token string) {
	if Conn == nil {
		return
	}
	if err := Conn.Set(Ctx, "token:"+userID, token, tokenTTL).Err(); err != nil {
		log.Printf("Redis token storage failed: %v", err)
	}
}

// TokenActive reports whether the token is still the live one for the user.
// Redis being down fails open so auth keeps working without revocation.
func TokenActive(userID, token string) bool {
	if Conn == nil {
		return true
	}
	stored, err := Conn.Get(Ctx, "token:"+userID).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		log.Printf("Redis token lookup failed: %v", err)
		return true
	}
	return stored == token
}

func RevokeToken(userID string) {
	if Conn == nil {
		return
	}
	if err := Conn.Del(Ctx, "token:"+userID).Err(); err != nil {
		log.Printf("Redis token revoke failed: %v", err)
	}
}
