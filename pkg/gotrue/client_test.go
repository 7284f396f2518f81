package gotrue_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"realtime-taskboard/pkg/gotrue"
)

func TestSignInAnonymously(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/auth/v1/signup" || r.Method != http.MethodPost {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if r.Header.Get("apikey") != "anon-key" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			json.NewEncoder(w).Encode(gotrue.Session{
				AccessToken: "jwt-token",
				TokenType:   "bearer",
				ExpiresIn:   3600,
			})
		}))
		defer ts.Close()

		client := gotrue.NewClient(ts.URL, "anon-key")
		session, err := client.SignInAnonymously(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.AccessToken != "jwt-token" || session.TokenType != "bearer" {
			t.Errorf("unexpected session: %+v", session)
		}
	})

	t.Run("server error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		client := gotrue.NewClient(ts.URL, "anon-key")
		if _, err := client.SignInAnonymously(ctx); err == nil {
			t.Error("expected error on 500")
		}
	})

	t.Run("missing token is a failure", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(gotrue.Session{})
		}))
		defer ts.Close()

		client := gotrue.NewClient(ts.URL, "anon-key")
		if _, err := client.SignInAnonymously(ctx); err == nil {
			t.Error("expected error on empty token")
		}
	})
}
