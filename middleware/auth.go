package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "wirehaul/database/repository/user"
	"wirehaul/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthMiddleware validates the bearer token and sets "userID" and
// "role" in the Gin context. The subject-to-role resolution is cached in
// Redis keyed by token hash so the identity store is not hit per request;
// a nil cache client disables caching and every request hits the store.
func JWTAuthMiddleware(users userRepo.UserRepository, cache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.APIResponse{
				Success: false, StatusCode: http.StatusUnauthorized,
				Message: "Missing or invalid Authorization header",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		sub, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.APIResponse{
				Success: false, StatusCode: http.StatusUnauthorized,
				Message: "Invalid token",
			})
			return
		}

		// Confirm the subject still resolves to a live account; cache the
		// confirmation so repeated calls skip the store lookup.
		cacheKey := utils.AuthCachePrefix + utils.HashToken(tokenString)
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		cached := false
		if cache != nil {
			if cachedRole, err := cache.Get(ctx, cacheKey).Result(); err == nil {
				role = cachedRole
				cached = true
			} else if err != redis.Nil {
				// Cache unavailable; fall through to the store.
				utils.GetLogger().Warn("auth cache unavailable, hitting identity store")
			}
		}
		if !cached {
			user, lookupErr := users.GetByID(sub)
			if lookupErr != nil || user == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, utils.APIResponse{
					Success: false, StatusCode: http.StatusUnauthorized,
					Message: "Account not found",
				})
				return
			}
			role = user.Role
			if cache != nil {
				_ = cache.Set(ctx, cacheKey, role, utils.AuthCacheTTL).Err()
			}
		}

		c.Set("userID", sub)
		c.Set("role", role)
		c.Next()
	}
}

// RequireRole rejects requests whose authenticated role is not in the
// allowed set.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		roleStr, _ := role.(string)
		if _, ok := allowed[roleStr]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, utils.APIResponse{
				Success: false, StatusCode: http.StatusForbidden,
				Message: "Insufficient permissions",
			})
			return
		}
		c.Next()
	}
}
