package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"

	"github.com/gorilla/schema"
	"github.com/kfly8/muxbuilder"
	"github.com/kfly8/muxbuilder/http/router"
)

// A Parser decodes and validates request payloads.
// It is safe for concurrent use.
type Parser struct {
	dec *schema.Decoder
	validator
}

// NewParser constructs a *Parser.
func NewParser() *Parser {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return &Parser{dec: dec, validator: newValidator()}
}

var defaultParser = NewParser()

// ParseBody decodes the JSON in body into structPtr, then validates it.
//
// ParseBody reads body to the end.
func (p *Parser) ParseBody(body io.Reader, structPtr any) error {
	var ourFault *json.InvalidUnmarshalError
	err := json.NewDecoder(body).Decode(structPtr)
	if errors.As(err, &ourFault) {
		return fmt.Errorf("req: %w: ParseBody called with non-pointer: %s", muxbuilder.ErrBadAny, err)
	}

	if err != nil {
		return fmt.Errorf("req: %w: failed decoding request body: %s", muxbuilder.ErrBadFormat, err)
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("req: %T failed validation: %w", structPtr, err)
	}

	return nil
}

// ParseQueryParams decodes params into structPtr, matching keys to "schema" tags, then validates it.
func (p *Parser) ParseQueryParams(params url.Values, structPtr any) error {
	if v := reflect.ValueOf(structPtr); v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("req: %w: ParseQueryParams called with %T, not a pointer to a struct", muxbuilder.ErrBadAny, structPtr)
	}

	if err := p.dec.Decode(structPtr, params); err != nil {
		return fmt.Errorf("req: failed decoding request query params: %w", translateDecoderError(err))
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("req: %T failed validation: %w", structPtr, err)
	}

	return nil
}

// Decode parses the payload of r into structPtr:
// the JSON body of POST, PUT and PATCH requests, the query parameters of all others.
//
// A payload failing to decode or validate returns as a [*router.Error]
// with http.StatusBadRequest, so the default error handler responds with it.
func Decode(r *http.Request, structPtr any) error {
	var err error
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		err = defaultParser.ParseBody(r.Body, structPtr)
	default:
		err = defaultParser.ParseQueryParams(r.URL.Query(), structPtr)
	}

	if errors.Is(err, muxbuilder.ErrBadFormat) || errors.Is(err, muxbuilder.ErrNotValid) {
		return router.NewError(http.StatusBadRequest, "").Wrap(err)
	}

	return err
}
