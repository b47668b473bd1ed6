package utils

import (
	"context"
)

type contextKey string

const (
	SubjectKey contextKey = "subject"
	RoleKey    contextKey = "role"
	TokenKey   contextKey = "token"
)

// SetAuthContext stores the authenticated subject (username) and role.
func SetAuthContext(ctx context.Context, subject, role string) context.Context {
	ctx = context.WithValue(ctx, SubjectKey, subject)
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}

// GetSubjectFromContext returns the authenticated username.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subjectVal := ctx.Value(SubjectKey)
	if subjectVal == nil {
		return "", false
	}

	subject, ok := subjectVal.(string)
	if !ok || subject == "" {
		return "", false
	}

	return subject, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	roleVal := ctx.Value(RoleKey)
	if roleVal == nil {
		return "", false
	}

	role, ok := roleVal.(string)
	return role, ok
}

// SetTokenContext stores the raw bearer token so downstream handlers
// (logout, admin re-check) can reuse it without re-parsing the header.
func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	tokenVal := ctx.Value(TokenKey)
	if tokenVal == nil {
		return "", false
	}

	token, ok := tokenVal.(string)
	return token, ok
}
