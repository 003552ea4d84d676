package ghapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestValidateToken_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/zen" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "token good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte("Keep it logically awesome."))
	}))
	defer server.Close()

	client := New(server.URL).WithHTTPClient(server.Client())
	if err := client.ValidateToken(context.Background(), "good-token"); err != nil {
		t.Errorf("ValidateToken: %v", err)
	}
}

func TestValidateToken_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := New(server.URL).WithHTTPClient(server.Client())
	if err := client.ValidateToken(context.Background(), "bad-token"); err == nil {
		t.Error("expected error for rejected token")
	}
}

func TestValidateToken_Empty(t *testing.T) {
	client := New("")
	if err := client.ValidateToken(context.Background(), ""); err == nil {
		t.Error("expected error for empty token")
	}
}
