package router_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/kfly8/muxbuilder/http/router"
	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	tcs := []struct {
		name   string
		err    *router.Error
		expMsg string
		expStr string
	}{
		{"status text", router.NewError(http.StatusNotFound, ""), "Not Found", "404 Not Found"},
		{"message", router.NewError(http.StatusBadRequest, "bad id"), "bad id", "400 bad id"},
		{"wrapped", router.NewError(http.StatusConflict, "").Wrap(errors.New("dup")), "Conflict", "409 Conflict: dup"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expMsg, tc.err.Message)
			require.Equal(t, tc.expStr, tc.err.Error())
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	// Arrange
	cause := errors.New("cause")

	// Act
	err := error(router.NewError(http.StatusBadGateway, "").Wrap(cause))

	// Assert
	require.ErrorIs(t, err, cause)
}

func TestPanicError(t *testing.T) {
	cause := errors.New("cause")

	require.Equal(t, "panic: 42", (&router.PanicError{Value: 42}).Error())
	require.Nil(t, (&router.PanicError{Value: 42}).Unwrap())
	require.ErrorIs(t, &router.PanicError{Value: cause}, cause)
}
