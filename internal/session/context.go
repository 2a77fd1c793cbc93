package session

import (
	"context"

	"github.com/kraviona/seller-console/internal/models"
)

type tokenKey struct{}
type profileKey struct{}

func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext reports the API token the route gate resolved for this
// request, if any.
func TokenFromContext(ctx context.Context) (string, bool) {
	if v := ctx.Value(tokenKey{}); v != nil {
		if tok, ok := v.(string); ok && tok != "" {
			return tok, true
		}
	}
	return "", false
}

func WithProfile(ctx context.Context, p models.Profile) context.Context {
	return context.WithValue(ctx, profileKey{}, p)
}

func ProfileFromContext(ctx context.Context) models.Profile {
	if v := ctx.Value(profileKey{}); v != nil {
		if p, ok := v.(models.Profile); ok {
			return p
		}
	}
	return models.DefaultProfile()
}
