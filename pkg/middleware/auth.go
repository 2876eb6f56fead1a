package middleware

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/MicahParks/jwkset"
	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"

	apperrors "offices/pkg/errors"
	httputil "offices/pkg/http"
	"offices/pkg/logger"
)

const (
	SubjectKey contextKey = "jwt_subject"
	RolesKey   contextKey = "jwt_roles"
)

// Claims accepts a single "role" claim, a "roles" array, or both.
type Claims struct {
	jwt.RegisteredClaims
	Role  string   `json:"role,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

func (c *Claims) AllRoles() []string {
	roles := make([]string, 0, len(c.Roles)+1)
	if c.Role != "" {
		roles = append(roles, c.Role)
	}
	return append(roles, c.Roles...)
}

type AuthConfig struct {
	JWKSURL         string
	Issuer          string
	Audience        string
	Leeway          time.Duration
	ClientTimeout   time.Duration
	RefreshInterval time.Duration
}

type JWTAuth struct {
	jwks    keyfunc.Keyfunc
	options []jwt.ParserOption
	log     *logger.Logger
}

// NewJWTAuth fetches signing keys from cfg.JWKSURL and refreshes them in the
// background. An unreachable JWKS endpoint at startup is not fatal.
func NewJWTAuth(cfg AuthConfig, log *logger.Logger) (*JWTAuth, error) {
	storage, err := jwkset.NewStorageFromHTTP(cfg.JWKSURL, jwkset.HTTPClientStorageOptions{
		Client:                    &http.Client{Timeout: cfg.ClientTimeout},
		NoErrorReturnFirstHTTPReq: true,
		RefreshInterval:           cfg.RefreshInterval,
		RefreshErrorHandler: func(_ context.Context, err error) {
			log.Error("Failed to refresh JWKS", "url", cfg.JWKSURL, "error", err)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create JWKS storage: %w", err)
	}

	kf, err := keyfunc.New(keyfunc.Options{Storage: storage})
	if err != nil {
		return nil, fmt.Errorf("create keyfunc: %w", err)
	}

	return NewJWTAuthWithKeyfunc(kf, cfg, log), nil
}

// NewJWTAuthWithKeyfunc builds the middleware around an existing key source.
func NewJWTAuthWithKeyfunc(kf keyfunc.Keyfunc, cfg AuthConfig, log *logger.Logger) *JWTAuth {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(cfg.Leeway),
	}
	if cfg.Issuer != "" {
		options = append(options, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		options = append(options, jwt.WithAudience(cfg.Audience))
	}

	return &JWTAuth{
		jwks:    kf,
		options: options,
		log:     log,
	}
}

// RequireRole wraps a route so it only runs for a valid bearer token that
// carries role. Missing or bad tokens get 401, a missing role gets 403.
func (j *JWTAuth) RequireRole(role string) func(httprouter.Handle) httprouter.Handle {
	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			claims, appErr := j.authenticate(r)
			if appErr != nil {
				j.reject(w, r, appErr)
				return
			}

			roles := claims.AllRoles()
			if !slices.Contains(roles, role) {
				j.reject(w, r, apperrors.Forbidden(fmt.Sprintf("role %s required", role)))
				return
			}

			ctx := context.WithValue(r.Context(), SubjectKey, claims.Subject)
			ctx = context.WithValue(ctx, RolesKey, roles)
			next(w, r.WithContext(ctx), ps)
		}
	}
}

func (j *JWTAuth) authenticate(r *http.Request) (*Claims, *apperrors.AppError) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, apperrors.Unauthorized("missing Authorization header")
	}

	scheme, tokenString, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
		return nil, apperrors.Unauthorized("Authorization header must be 'Bearer <token>'")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, j.jwks.KeyfuncCtx(r.Context()), j.options...)
	if err != nil || !token.Valid {
		j.log.Debug("JWT validation failed",
			"request_id", RequestIDFromContext(r.Context()),
			"error", err,
		)
		return nil, apperrors.Unauthorized("invalid or expired token")
	}
	return claims, nil
}

func (j *JWTAuth) reject(w http.ResponseWriter, r *http.Request, appErr *apperrors.AppError) {
	j.log.Warn("Request rejected by auth",
		"request_id", RequestIDFromContext(r.Context()),
		"path", r.URL.Path,
		"status", appErr.StatusCode(),
		"reason", appErr.Message,
	)
	if err := httputil.WriteError(w, appErr); err != nil {
		j.log.Error("failed to write error response", "handler", "RequireRole", "operation", "WriteError", "error", err)
	}
}

// NoAuth leaves routes unprotected.
func NoAuth(next httprouter.Handle) httprouter.Handle {
	return next
}

func SubjectFromContext(ctx context.Context) string {
	subject, _ := ctx.Value(SubjectKey).(string)
	return subject
}
