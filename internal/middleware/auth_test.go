package middleware

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

const secret = "test-secret"

func sign(t *testing.T, key string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func run(mw func(fasthttp.RequestHandler) fasthttp.RequestHandler, authorization string) (*fasthttp.RequestCtx, bool, string) {
	ctx := &fasthttp.RequestCtx{}
	if authorization != "" {
		ctx.Request.Header.Set("Authorization", authorization)
	}
	ctx.Request.Header.Set(HeaderSubject, "spoofed")

	called := false
	var subject string
	mw(func(ctx *fasthttp.RequestCtx) {
		called = true
		subject = string(ctx.Request.Header.Peek(HeaderSubject))
		ctx.SetStatusCode(fasthttp.StatusOK)
	})(ctx)
	return ctx, called, subject
}

func TestJWTAuthDisabledWithoutSecret(t *testing.T) {
	ctx, called, _ := run(JWTAuth("", "", nil), "")
	assert.True(t, called)
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	token := sign(t, secret, jwt.MapClaims{
		"sub": "user-1",
		"iss": "valueops",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, called, subject := run(JWTAuth(secret, "valueops", nil), "Bearer "+token)
	assert.True(t, called)
	assert.Equal(t, "user-1", subject)

	_, called, _ = run(JWTAuth(secret, "", nil), token)
	assert.True(t, called)
}

func TestJWTAuthRejects(t *testing.T) {
	valid := jwt.MapClaims{"sub": "user-1", "iss": "valueops"}
	tests := []struct {
		name          string
		authorization string
	}{
		{"missing token", ""},
		{"garbage", "Bearer not-a-jwt"},
		{"wrong key", "Bearer " + sign(t, "other", valid)},
		{"expired", "Bearer " + sign(t, secret, jwt.MapClaims{"iss": "valueops", "exp": time.Now().Add(-time.Hour).Unix()})},
		{"wrong issuer", "Bearer " + sign(t, secret, jwt.MapClaims{"iss": "someone-else"})},
		{"no issuer", "Bearer " + sign(t, secret, jwt.MapClaims{"sub": "user-1"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, called, _ := run(JWTAuth(secret, "valueops", nil), tt.authorization)
			assert.False(t, called)
			assert.Equal(t, fasthttp.StatusUnauthorized, ctx.Response.StatusCode())
		})
	}
}
