package main

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/kfly8/muxbuilder"
	"github.com/kfly8/muxbuilder/http/middleware"
	"github.com/kfly8/muxbuilder/http/router"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T, entry string) *router.Router {
	t.Helper()

	app, err := build(entry, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Nil(t, err)
	return app
}

func request(t *testing.T, app *router.Router, method, target, body string, opts ...router.RequestOption) (*http.Response, string) {
	t.Helper()

	opts = append([]router.RequestOption{router.WithMethod(method), router.WithBody(strings.NewReader(body))}, opts...)
	res, err := app.Request(target, opts...)
	require.Nil(t, err)
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	require.Nil(t, err)
	return res, string(b)
}

func TestBuildEntries(t *testing.T) {
	tcs := []struct {
		entry  string
		target string
		status int
	}{
		{"all", "/api/status", http.StatusOK},
		{"all", "/api/users", http.StatusOK},
		{"all", "/todos", http.StatusOK},
		{"api", "/api/users/1", http.StatusOK},
		{"api", "/todos", http.StatusNotFound},
		{"todos", "/todos", http.StatusOK},
		{"todos", "/api/status", http.StatusNotFound},
	}

	for _, tc := range tcs {
		t.Run(tc.entry+tc.target, func(t *testing.T) {
			// Arrange
			app := testApp(t, tc.entry)

			// Act
			res, _ := request(t, app, http.MethodGet, tc.target, "")

			// Assert
			require.Equal(t, tc.status, res.StatusCode)
			require.Equal(t, "application/json; charset=UTF-8", res.Header.Get("Content-Type"))
		})
	}
}

func TestBuildUnknownEntry(t *testing.T) {
	_, err := build("nope", slog.Default())

	require.ErrorIs(t, err, muxbuilder.ErrNotValid)
	require.Contains(t, err.Error(), "all, api, todos")
}

func TestNotFound(t *testing.T) {
	// Arrange
	app := testApp(t, "api")

	// Act
	res, body := request(t, app, http.MethodGet, "/unknown", "")

	// Assert
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.Equal(t, `{"error":"Not Found"}`, body)
}

func TestUsers(t *testing.T) {
	app := testApp(t, "api")

	res, body := request(t, app, http.MethodGet, "/api/users/2", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "muxbuilder", res.Header.Get("X-Powered-By"))
	require.Equal(t, `{"id":2,"name":"Bob","email":"bob@example.com"}`, body)

	res, body = request(t, app, http.MethodGet, "/api/users/9", "")
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.Equal(t, `{"error":"User not found"}`, body)

	res, body = request(t, app, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	var list []user
	require.Nil(t, json.Unmarshal([]byte(body), &list))
	require.Len(t, list, 3)

	res, body = request(t, app, http.MethodGet, "/api/users?name=BO", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Nil(t, json.Unmarshal([]byte(body), &list))
	require.Equal(t, []user{users[1]}, list)

	res, body = request(t, app, http.MethodGet, "/api/users?name="+strings.Repeat("a", 65), "")
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Contains(t, body, `"validationErrors":[{"field":"name"`)
}

func idemKey(key string) router.RequestOption {
	return router.WithHeader(middleware.IdempotencyHeader, key)
}

func TestTodos(t *testing.T) {
	// Arrange
	app := testApp(t, "todos")

	// Act
	created, body := request(t, app, http.MethodPost, "/todos", `{"title":"Write tests"}`, idemKey("todos-create"))
	var got todo
	require.Nil(t, json.Unmarshal([]byte(body), &got))
	toggled, toggledBody := request(t, app, http.MethodPost, "/todos/"+created.Header.Get("Location")[len("/todos/"):]+"/toggle", "")
	invalid, invalidBody := request(t, app, http.MethodPost, "/todos", `{"title":"  "}`, idemKey("todos-blank"))
	missing, _ := request(t, app, http.MethodPost, "/todos/999/toggle", "")
	empty, emptyBody := request(t, app, http.MethodPost, "/todos", `{}`, idemKey("todos-empty"))
	malformed, malformedBody := request(t, app, http.MethodPost, "/todos", `{"title":`, idemKey("todos-malformed"))
	noKey, _ := request(t, app, http.MethodPost, "/todos", `{"title":"No key"}`)

	// Assert
	require.Equal(t, http.StatusCreated, created.StatusCode)
	require.Equal(t, "Write tests", got.Title)
	require.Equal(t, http.StatusOK, toggled.StatusCode)
	require.Contains(t, toggledBody, `"completed":true`)
	require.Equal(t, http.StatusBadRequest, invalid.StatusCode)
	require.Equal(t, `{"error":"title is required"}`, invalidBody)
	require.Equal(t, http.StatusNotFound, missing.StatusCode)
	require.Equal(t, http.StatusBadRequest, empty.StatusCode)
	require.Equal(t, `{"error":"Bad Request","validationErrors":[{"field":"title","got":"","rule":"required; string"}]}`, emptyBody)
	require.Equal(t, http.StatusBadRequest, malformed.StatusCode)
	require.Equal(t, `{"error":"Bad Request"}`, malformedBody)
	require.Equal(t, http.StatusBadRequest, noKey.StatusCode)
}

func TestCreateTodoIdempotent(t *testing.T) {
	// Arrange
	app := testApp(t, "todos")
	before := len(todos.all())

	// Act
	first, firstBody := request(t, app, http.MethodPost, "/todos", `{"title":"Once"}`, idemKey("todos-once"))
	retry, retryBody := request(t, app, http.MethodPost, "/todos", `{"title":"Once"}`, idemKey("todos-once"))
	reused, _ := request(t, app, http.MethodPost, "/todos", `{"title":"Twice"}`, idemKey("todos-once"))

	// Assert
	require.Equal(t, http.StatusCreated, first.StatusCode)
	require.Equal(t, http.StatusCreated, retry.StatusCode)
	require.Equal(t, "application/json; charset=UTF-8", retry.Header.Get("Content-Type"))
	require.Equal(t, firstBody, retryBody)
	require.Equal(t, http.StatusUnprocessableEntity, reused.StatusCode)
	require.Len(t, todos.all(), before+1)
}

func TestOnError(t *testing.T) {
	// Arrange
	b := newBuilder(slog.New(slog.NewTextHandler(io.Discard, nil)))
	b.Get("/boom", func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("kaboom")
	})

	// Act
	res, body := request(t, b.Build(), http.MethodGet, "/boom", "")

	// Assert
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.Equal(t, `{"error":"Internal Server Error","message":"kaboom"}`, body)
}

func TestShowRoutes(t *testing.T) {
	// Arrange
	app := testApp(t, "all")
	var b strings.Builder

	// Act
	err := router.ShowRoutes(&b, app, router.Colorize(false))

	// Assert
	require.Nil(t, err)
	require.Contains(t, b.String(), "GET   /api/users/{id:[0-9]+}")
	require.Contains(t, b.String(), "POST  /todos/{id:[0-9]+}/toggle")
}
