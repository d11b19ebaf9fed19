package auth

import (
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// HeaderName carries the service API key.
const HeaderName = "X-API-Key"

// Auth validates the X-API-Key header against a bcrypt hash of the
// service key. An empty hash disables the check, which is the dev-mode
// default.
type Auth struct {
	keyHash string
	log     *slog.Logger
}

func New(keyHash string, log *slog.Logger) *Auth {
	return &Auth{
		keyHash: keyHash,
		log:     log.With("component", "auth_middleware"),
	}
}

// Enabled reports whether a key hash is configured.
func (a *Auth) Enabled() bool {
	return a.keyHash != ""
}

func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if !a.Enabled() {
			next(ctx)
			return
		}

		key := ctx.Header(HeaderName)
		if key == "" || bcrypt.CompareHashAndPassword([]byte(a.keyHash), []byte(key)) != nil {
			a.log.Warn("request rejected: bad API key", "path", ctx.URL().Path)
			a.reject(ctx)
			return
		}

		next(ctx)
	}
}

func (a *Auth) reject(ctx huma.Context) {
	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")

	if err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": "Unauthorized",
	}); err != nil {
		a.log.Error("failed to write auth error", "error", err)
	}
}
