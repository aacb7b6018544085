package http

import (
	"errors"
	"net/http"
	"strings"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/user"
	"courierhub/internal/generated/servers"
	"courierhub/internal/pkg/errs"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// Actor is the authenticated caller. Tokens are issued by the account service
// and carry the user id in "sub" and the stored role name in "role".
type Actor struct {
	ID   kernel.UUID
	Role user.Role
}

func (a Actor) Is(roles ...user.Role) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// NewAuthMiddleware validates the Bearer token of every /api request and
// stores the Actor in the echo context. Health and swagger routes are public.
func NewAuthMiddleware(secret string) echo.MiddlewareFunc {
	skipper := func(c echo.Context) bool {
		return !strings.HasPrefix(c.Path(), "/api/")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}

			token, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return unauthorized(c, err)
			}

			actor, err := ParseToken(token, secret)
			if err != nil {
				return unauthorized(c, err)
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

// ParseToken checks an HS256 token and extracts the actor.
func ParseToken(token, secret string) (Actor, error) {
	if secret == "" {
		return Actor{}, errors.New("jwt secret is empty")
	}

	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Actor{}, err
	}
	if !parsed.Valid {
		return Actor{}, errors.New("invalid token")
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || c.Subject == "" || c.Role == "" {
		return Actor{}, errors.New("invalid claims")
	}

	id, err := kernel.UUIDFromString(c.Subject)
	if err != nil {
		return Actor{}, err
	}
	role, err := user.ParseRole(strings.ToLower(c.Role))
	if err != nil {
		return Actor{}, err
	}

	return Actor{ID: id, Role: role}, nil
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.New("missing authorization")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}

func unauthorized(c echo.Context, err error) error {
	return c.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: "Unauthorized: " + err.Error(),
	})
}

func actorFrom(c echo.Context) (Actor, error) {
	actor, ok := c.Get(actorContextKey).(Actor)
	if !ok {
		return Actor{}, errs.NewValueIsRequiredError("authenticated user")
	}
	return actor, nil
}

// requireRole returns a Forbidden error unless the actor has one of roles.
func requireRole(actor Actor, resource string, id string, roles ...user.Role) error {
	if actor.Is(roles...) {
		return nil
	}
	return errs.NewForbiddenError(actor.ID.String(), resource, id)
}

// requireSelfOrAdmin lets couriers read their own data and admins read anyone's.
func requireSelfOrAdmin(actor Actor, resource string, id kernel.UUID) error {
	if actor.ID.IsEqual(id) || actor.Is(user.Admin) {
		return nil
	}
	return errs.NewForbiddenError(actor.ID.String(), resource, id.String())
}
