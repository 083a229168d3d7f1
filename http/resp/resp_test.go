package resp_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kfly8/muxbuilder/http/resp"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()

	// Act
	err := resp.JSON(w, http.StatusNotFound, map[string]string{"error": "Not Found"})

	// Assert
	require.Nil(t, err)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "application/json; charset=UTF-8", w.Header().Get("Content-Type"))
	require.Equal(t, `{"error":"Not Found"}`, w.Body.String())
}

func TestJSONUnencodable(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()

	// Act
	err := resp.JSON(w, http.StatusOK, make(chan int))

	// Assert
	require.NotNil(t, err)
	require.Zero(t, w.Body.Len())
	require.Empty(t, w.Header().Get("Content-Type"))
}

func TestText(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()

	// Act
	err := resp.Text(w, http.StatusTeapot, "short and stout")

	// Assert
	require.Nil(t, err)
	require.Equal(t, http.StatusTeapot, w.Code)
	require.Equal(t, "short and stout", w.Body.String())
}

func TestNoContent(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()

	// Act
	require.Nil(t, resp.NoContent(w))

	// Assert
	require.Equal(t, http.StatusNoContent, w.Code)
}
