package auth

import "context"

// Validator reports whether an access token is currently valid.
type Validator interface {
	Validate(ctx context.Context, token string) bool
}

// AnyOf accepts a token as soon as one of its validators does.
type AnyOf []Validator

func (a AnyOf) Validate(ctx context.Context, token string) bool {
	for _, v := range a {
		if v.Validate(ctx, token) {
			return true
		}
	}
	return false
}
