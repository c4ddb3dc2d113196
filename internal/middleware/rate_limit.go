package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rate_front_end/internal/cache"
)

const (
	LoginMaxAttempts = 5
	LoginCooldown    = 15 * time.Minute
)

// LoginRateLimit limite les tentatives de connexion par nom d'utilisateur
func LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cache.RedisClient == nil {
			c.Next()
			return
		}

		// Lire le body sans le consommer
		bodyBytes, _ := io.ReadAll(c.Request.Body)

		var input struct {
			Username string `json:"username"`
		}
		if err := json.Unmarshal(bodyBytes, &input); err != nil || input.Username == "" {
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			c.Next()
			return
		}

		// Remettre le body pour les handlers suivants
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		ctx := context.Background()
		cooldownKey := "login_cooldown:" + input.Username

		if cache.RedisClient.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := cache.RedisClient.TTL(ctx, cooldownKey).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop de tentatives échouées. Réessayez dans %d minutes", int(ttl.Minutes())),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		attempts, _ := cache.IncrementRateLimit("login_attempts:"+input.Username, LoginCooldown)
		if attempts > LoginMaxAttempts {
			cache.RedisClient.Set(ctx, cooldownKey, "1", LoginCooldown)
			cache.RedisClient.Del(ctx, "login_attempts:"+input.Username)

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop de tentatives échouées. Compte bloqué pendant %d minutes", int(LoginCooldown.Minutes())),
				"retry_after": int(LoginCooldown.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
