package operators

import (
	"errors"

	"github.com/born-ml/find/internal/tensor"
)

// Setup-time errors. They are returned before any computation runs.
var (
	ErrUnsupportedType   = tensor.ErrUnsupportedType
	ErrDTypeMismatch     = tensor.ErrDTypeMismatch
	ErrMissingValueRange = tensor.ErrMissingValueRange
	ErrIndexTooLarge     = tensor.ErrIndexTooLarge
	ErrUnsupportedOp     = errors.New("unsupported operator")
	ErrNoBackend         = errors.New("no backend in context")
)
