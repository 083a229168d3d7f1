package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/kfly8/muxbuilder/builder"
	"github.com/kfly8/muxbuilder/http/middleware"
	"github.com/kfly8/muxbuilder/http/req"
	"github.com/kfly8/muxbuilder/http/resp"
	"github.com/kfly8/muxbuilder/http/router"
)

type todo struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// todoList is safe for concurrent use; requests are served concurrently.
type todoList struct {
	mu    sync.Mutex
	todos []todo
}

// idemCache records the responses of POST /todos per Idempotency-Key.
var idemCache middleware.IdempotencyCacher = middleware.NewIdemResMap(middleware.DefaultIdempotencyTTL)

var todos = &todoList{todos: []todo{
	{ID: 1, Title: "Learn muxbuilder"},
	{ID: 2, Title: "Build an app"},
	{ID: 3, Title: "Deploy to production"},
}}

func (tl *todoList) all() []todo {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	out := make([]todo, len(tl.todos))
	copy(out, tl.todos)
	return out
}

func (tl *todoList) add(title string) todo {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	id := 1
	for _, t := range tl.todos {
		if t.ID >= id {
			id = t.ID + 1
		}
	}

	t := todo{ID: id, Title: title}
	tl.todos = append(tl.todos, t)
	return t
}

func (tl *todoList) toggle(id int) (todo, bool) {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	for i := range tl.todos {
		if tl.todos[i].ID == id {
			tl.todos[i].Completed = !tl.todos[i].Completed
			return tl.todos[i], true
		}
	}

	return todo{}, false
}

func todoRoutes(b *builder.Builder) {
	b.BasePath("/todos").
		Get("/", func(w http.ResponseWriter, r *http.Request) error {
			return resp.JSON(w, http.StatusOK, todos.all())
		}).
		Post("/", createTodo, middleware.Idempotent(idemCache)).
		Post("/{id:[0-9]+}/toggle", toggleTodo)
}

func createTodo(w http.ResponseWriter, r *http.Request) error {
	var body struct {
		Title string `json:"title" validate:"required"`
	}
	if err := req.Decode(r, &body); err != nil {
		return err
	}

	title := strings.TrimSpace(body.Title)
	if title == "" {
		return router.NewError(http.StatusBadRequest, "title is required")
	}

	t := todos.add(title)
	w.Header().Set("Location", fmt.Sprintf("/todos/%d", t.ID))
	return resp.JSON(w, http.StatusCreated, t)
}

func toggleTodo(w http.ResponseWriter, r *http.Request) error {
	id, err := strconv.Atoi(router.Param(r, "id"))
	if err != nil {
		return router.NewError(http.StatusBadRequest, "invalid todo id").Wrap(err)
	}

	t, ok := todos.toggle(id)
	if !ok {
		return router.NewError(http.StatusNotFound, "Todo not found")
	}

	return resp.JSON(w, http.StatusOK, t)
}
