package compare

import (
	"errors"

	"github.com/dgallion1/resumescore/internal/parser"
)

// Error kinds reported to callers.
const (
	KindUnsupportedFormat = "unsupported_format"
	KindCorruptDocument   = "corrupt_document"
	KindMissingInput      = "missing_input"
	KindInternal          = "internal"
)

// ErrorKind classifies err into one of the Kind constants.
func ErrorKind(err error) string {
	var unsupported *parser.UnsupportedFormatError
	var corrupt *parser.CorruptDocumentError
	var missing *MissingInputError
	switch {
	case errors.As(err, &unsupported):
		return KindUnsupportedFormat
	case errors.As(err, &corrupt):
		return KindCorruptDocument
	case errors.As(err, &missing):
		return KindMissingInput
	default:
		return KindInternal
	}
}
