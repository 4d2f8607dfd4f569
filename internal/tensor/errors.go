package tensor

import (
	"errors"
	"fmt"
	"math"
)

// Find setup errors. They are returned before any computation runs.
var (
	ErrUnsupportedType   = errors.New("unsupported dtype")
	ErrDTypeMismatch     = errors.New("dtype mismatch")
	ErrMissingValueRange = errors.New("missing_value out of range")
	ErrIndexTooLarge     = errors.New("index too large")
)

// CheckFind validates the dtypes and sentinel of a Find over index and needles.
func CheckFind(index, needles DataType, missing int64) error {
	if !index.IsIndexType() {
		return fmt.Errorf("find: index: %w %s (want int32 or int64)", ErrUnsupportedType, index)
	}
	if !needles.IsIndexType() {
		return fmt.Errorf("find: needles: %w %s (want int32 or int64)", ErrUnsupportedType, needles)
	}
	if index != needles {
		return fmt.Errorf("find: %w: index %s, needles %s", ErrDTypeMismatch, index, needles)
	}
	if index == Int32 && (missing < math.MinInt32 || missing > math.MaxInt32) {
		return fmt.Errorf("find: %w: %d does not fit int32", ErrMissingValueRange, missing)
	}
	return nil
}

// CheckIndexLen fails when the last position of an n-element index does not fit dtype.
func CheckIndexLen(dtype DataType, n int) error {
	if dtype == Int32 && int64(n)-1 > math.MaxInt32 {
		return fmt.Errorf("find: %w: %d positions do not fit int32", ErrIndexTooLarge, n)
	}
	return nil
}
