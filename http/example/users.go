package main

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/kfly8/muxbuilder/builder"
	"github.com/kfly8/muxbuilder/http/req"
	"github.com/kfly8/muxbuilder/http/resp"
	"github.com/kfly8/muxbuilder/http/router"
)

type user struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

var users = []user{
	{ID: 1, Name: "Alice", Email: "alice@example.com"},
	{ID: 2, Name: "Bob", Email: "bob@example.com"},
	{ID: 3, Name: "Charlie", Email: "charlie@example.com"},
}

func userRoutes(b *builder.Builder) {
	b.BasePath("/api/users").
		Get("/", listUsers).
		Get("/{id:[0-9]+}", showUser)
}

// listUsers lists users, narrowed to names containing ?name= when set.
func listUsers(w http.ResponseWriter, r *http.Request) error {
	var filter struct {
		Name string `schema:"name" validate:"omitempty,max=64"`
	}
	if err := req.Decode(r, &filter); err != nil {
		return err
	}

	found := make([]user, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), strings.ToLower(filter.Name)) {
			found = append(found, u)
		}
	}

	return resp.JSON(w, http.StatusOK, found)
}

func showUser(w http.ResponseWriter, r *http.Request) error {
	id, err := strconv.Atoi(router.Param(r, "id"))
	if err != nil {
		return router.NewError(http.StatusBadRequest, "invalid user id").Wrap(err)
	}

	for _, u := range users {
		if u.ID == id {
			return resp.JSON(w, http.StatusOK, u)
		}
	}

	return router.NewError(http.StatusNotFound, "User not found")
}
