package req

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/schema"
	"github.com/kfly8/muxbuilder"
)

// translateDecoderError converts an error returned by *schema.Decoder into muxbuilder sentinel errors.
// Values that fail converting become ValidationErrors;
// anything else is a problem with the calling code.
func translateDecoderError(err error) error {
	var pkgErrs schema.MultiError
	if !errors.As(err, &pkgErrs) {
		return fmt.Errorf("%w: %s", muxbuilder.ErrBadFormat, err)
	}

	var validErrs ValidationErrors
	for _, pkgErr := range pkgErrs {
		switch err := pkgErr.(type) {
		case schema.ConversionError:
			validErrs = append(validErrs, ValidationError{
				Field: err.Key,
				// NOTE: Index is -1 for non-slice values
				Got:  fmt.Sprintf("bad value at index %d", max(0, err.Index)),
				Rule: "must be " + err.Type.String(),
			})

		case schema.EmptyFieldError:
			return fmt.Errorf(`%w: use "validate" tags to require fields, not "schema"`, muxbuilder.ErrNotImplemented)

		default:
			// NOTE: a field of a type schema has no converter for
			// only errors once a request sets its key
			if strings.Contains(err.Error(), "schema: converter not found for") {
				return fmt.Errorf("%w: cannot convert values into unsupported type", muxbuilder.ErrNotImplemented)
			}

			return fmt.Errorf("%w: %s", muxbuilder.ErrUnexpected, err)
		}
	}

	return validErrs
}
