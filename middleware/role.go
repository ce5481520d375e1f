package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	userRepo "bookbarn/database/repository/user"
	"bookbarn/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const roleCacheTTL = 5 * time.Minute

// RequireRole is the single canonical role gate. It runs after the access
// guard, resolves the caller's stored role (cache first, store on miss) and
// aborts with 403 on mismatch. Role data lives in the user document, not the
// token, so a role change bites on the next request.
func RequireRole(users userRepo.UserRepository, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := ResolvedEmail(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		stored, err := lookupRole(users, email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "role lookup failed"})
			return
		}
		if stored != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
			return
		}

		c.Next()
	}
}

// lookupRole resolves the stored role for an email, going through the Redis
// role cache with a store fallback. A cache outage degrades to store lookups.
func lookupRole(users userRepo.UserRepository, email string) (string, error) {
	ctx := context.Background()
	cacheKey := utils.RoleCachePrefix + email

	roleCache := utils.GetRoleCacheClient()
	if roleCache != nil {
		cached, err := roleCache.Get(ctx, cacheKey).Result()
		if err == nil {
			return cached, nil
		}
		if err != redis.Nil {
			log.Printf("WARNING: Error retrieving role cache key: %v. Falling back to DB lookup.", err)
		}
	}

	usr, err := users.GetByEmail(email)
	if err != nil {
		return "", err
	}

	// An absent user resolves to the empty role; cached like any other so a
	// storm of forbidden requests does not hammer the store.
	stored := ""
	if usr != nil {
		stored = usr.Role
	}

	if roleCache != nil {
		_ = roleCache.Set(ctx, cacheKey, stored, roleCacheTTL).Err()
	}
	return stored, nil
}

// InvalidateRoleCache drops a cached role after a role or account change.
func InvalidateRoleCache(email string) {
	roleCache := utils.GetRoleCacheClient()
	if roleCache == nil {
		return
	}
	_ = roleCache.Del(context.Background(), utils.RoleCachePrefix+email).Err()
}
