package handlers

import (
	"context"
	"net/http"
	"testing"
)

func TestZDebugValidationFlow(t *testing.T) {
	var got []string
	auth := &stubAuthService{
		register: func(_ context.Context, name, email, password string) (string, error) {
			got = []string{name, email, password}
			return "id", nil
		},
	}
	app := newTestApp(auth, &stubAssetService{})
	resp, body := doJSON(t, app, http.MethodPost, "/api/create/user",
		map[string]string{"name": "alice", "email": "not-an-email", "password": "secret"})
	t.Logf("status=%d body=%v registerCalledWith=%q", resp.StatusCode, body, got)
}
