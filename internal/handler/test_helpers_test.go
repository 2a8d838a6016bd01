package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Dan9191/thingful-users/internal/repository"
	"github.com/Dan9191/thingful-users/internal/service"
	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus/hooks/test"
)

var userColumns = []string{"id", "user_name", "full_name", "nick_name", "password", "date_created"}

func setupRouter(t *testing.T) (*mux.Router, sqlmock.Sqlmock, *test.Hook) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("sql expectations: %v", err)
		}
		_ = db.Close()
	})

	logger, hook := test.NewNullLogger()
	repo := repository.NewRepository(sqlx.NewDb(db, "postgres"))
	h := NewHandler(service.NewService(repo, logger), logger)
	return NewRouter(h, logger), mock, hook
}

func postJSON(t *testing.T, router http.Handler, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal(%q): %v", resp.Body.String(), err)
	}
	return out
}

func mustStatus(t *testing.T, actual int, expected int) {
	t.Helper()
	if actual != expected {
		t.Fatalf("expected status %d, got %d", expected, actual)
	}
}

func expectError(t *testing.T, resp *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	mustStatus(t, resp.Code, status)
	out := decodeBody(t, resp)
	if out["error"] != message {
		t.Fatalf("expected error %q, got %v", message, out["error"])
	}
	if len(out) != 1 {
		t.Fatalf("expected only an error field, got %v", out)
	}
}
