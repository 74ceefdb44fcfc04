package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-expense-manager/internal/jwt"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	method string
	target string
	body   any
	raw    string
	claims *jwt.Claims
	params map[string]string
}

func (tr testRequest) build(t *testing.T) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	switch {
	case tr.raw != "":
		buf.WriteString(tr.raw)
	case tr.body != nil:
		require.NoError(t, json.NewEncoder(&buf).Encode(tr.body))
	}

	req := httptest.NewRequest(tr.method, tr.target, &buf)
	ctx := req.Context()
	if tr.claims != nil {
		ctx = jwt.WithClaims(ctx, tr.claims)
	}
	if len(tr.params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range tr.params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func serve(t *testing.T, h http.HandlerFunc, tr testRequest) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h(rr, tr.build(t))
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func userClaims(publicID string) *jwt.Claims {
	return &jwt.Claims{PublicID: publicID, Role: jwt.RoleUser, Purpose: jwt.PurposeSession}
}
