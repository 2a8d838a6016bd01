package models

import (
	"database/sql"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func storedUser() *User {
	return &User{
		ID:          7,
		UserName:    "TestUser1",
		FullName:    "Test user 1",
		Password:    "$2a$12$abcdefghijklmnopqrstuu5Q9n1mJ2o3p4q5r6s7t8u9v0w1x2y3z",
		DateCreated: time.Date(2029, 1, 22, 16, 28, 32, 615000000, time.FixedZone("MSK", 3*60*60)),
	}
}

func TestSerializeUser(t *testing.T) {
	user := storedUser()
	user.NickName = sql.NullString{String: "TU1", Valid: true}

	got := SerializeUser(user)

	if got.ID != 7 || got.UserName != "TestUser1" || got.FullName != "Test user 1" || got.NickName != "TU1" {
		t.Fatalf("unexpected public user: %+v", got)
	}
	if got.DateCreated.Location() != time.UTC {
		t.Fatalf("expected UTC timestamp, got %s", got.DateCreated.Location())
	}
	if !got.DateCreated.Equal(user.DateCreated) {
		t.Fatalf("timestamp changed: %s vs %s", got.DateCreated, user.DateCreated)
	}
}

func TestSerializeUserNullNickname(t *testing.T) {
	got := SerializeUser(storedUser())
	if got.NickName != "" {
		t.Fatalf("expected empty nickname, got %q", got.NickName)
	}

	payload, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(payload, &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if nick, ok := out["nickname"]; !ok || nick != "" {
		t.Fatalf("expected nickname \"\", got %v", out["nickname"])
	}
	if _, ok := out["password"]; ok {
		t.Fatalf("password must not be serialized")
	}
	if strings.Contains(string(payload), "$2a$") {
		t.Fatalf("hash material leaked: %s", payload)
	}
	for _, key := range []string{"id", "full_name", "user_name", "date_created"} {
		if _, ok := out[key]; !ok {
			t.Fatalf("missing %q in %s", key, payload)
		}
	}
}

func TestSerializeUserEscapesMarkup(t *testing.T) {
	user := storedUser()
	user.FullName = `Naughty <script>alert("xss");</script>`
	user.UserName = "<b>bold</b>"
	user.NickName = sql.NullString{String: `<img src="x" onerror="alert(1)">`, Valid: true}

	got := SerializeUser(user)

	for _, field := range []string{got.FullName, got.UserName, got.NickName} {
		if strings.ContainsAny(field, "<>") {
			t.Fatalf("expected markup to be escaped, got %q", field)
		}
	}
	if got.FullName != `Naughty &lt;script&gt;alert("xss");&lt;/script&gt;` {
		t.Fatalf("unexpected full_name %q", got.FullName)
	}
}

func TestSerializeUserKeepsPunctuation(t *testing.T) {
	user := storedUser()
	user.UserName = "o'brien"
	user.FullName = `O'Brien & Sons "OB"`
	user.NickName = sql.NullString{String: "Tom & Jerry", Valid: true}

	got := SerializeUser(user)

	if got.UserName != user.UserName || got.FullName != user.FullName || got.NickName != "Tom & Jerry" {
		t.Fatalf("plain text names changed: %+v", got)
	}
}

func TestSerializeUserIsDeterministic(t *testing.T) {
	user := storedUser()
	user.FullName = "<script>x</script>"

	first := SerializeUser(user)
	second := SerializeUser(user)
	if first != second {
		t.Fatalf("expected identical output, got %+v and %+v", first, second)
	}
}
