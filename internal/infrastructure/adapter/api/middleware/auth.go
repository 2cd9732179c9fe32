package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/usecase"
)

const currentUserKey = "currentUser"

// Authenticate resolves the bearer token into a user and stores it on the request.
// Requests without a valid token are rejected with 401.
func Authenticate(authenticator usecase.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			AbortWithError(c, errs.ErrMissingToken)
			return
		}

		user, err := authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireRole lets only users with role through. It must run after Authenticate.
func RequireRole(role entity.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			AbortWithError(c, errs.ErrMissingToken)
			return
		}
		if user.Role != role {
			AbortWithError(c, errs.ErrAdminOnly)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user stored by Authenticate
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*entity.User)
	return user, ok && user != nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
