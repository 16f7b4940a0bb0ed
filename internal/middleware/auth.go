package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ultimatebank/account-service/internal/models"
	"go.uber.org/zap"
)

// HeaderUsername carries the caller's identity claim.
const HeaderUsername = "X-ultimate_username"

// UnauthorizedMessage is the fixed body message for rejected requests.
const UnauthorizedMessage = "You are not authorized to access this page!"

// UserFinder looks up a known user by name.
type UserFinder interface {
	FindUser(name string) (models.User, bool)
}

// UserHandlerFunc is a handler that requires a resolved identity.
type UserHandlerFunc func(c *gin.Context, user models.User)

// UserResolver turns a raw request into a User or rejects it.
type UserResolver struct {
	users  UserFinder
	logger *zap.Logger
}

func NewUserResolver(users UserFinder, logger *zap.Logger) *UserResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserResolver{users: users, logger: logger}
}

// Resolve reads the identity header and looks it up in the directory.
// Both a missing header and an unknown name yield models.ErrUnauthorized.
func (r *UserResolver) Resolve(req *http.Request) (models.User, error) {
	values := req.Header.Values(HeaderUsername)
	if len(values) == 0 {
		return models.User{}, fmt.Errorf("missing %s header: %w", HeaderUsername, models.ErrUnauthorized)
	}
	user, ok := r.users.FindUser(values[0])
	if !ok {
		return models.User{}, fmt.Errorf("unknown user %q: %w", values[0], models.ErrUnauthorized)
	}
	return user, nil
}

// Authorized gates next behind Resolve. A rejected request is aborted with 401
// before next runs; otherwise the resolved user is passed to next.
func Authorized(resolver *UserResolver, next UserHandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := resolver.Resolve(c.Request)
		if err != nil {
			resolver.logger.Debug("request rejected",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			RespondWithError(c, http.StatusUnauthorized, UnauthorizedMessage)
			c.Abort()
			return
		}
		next(c, user)
	}
}
