package indicator

import (
	"errors"
	"fmt"
)

// ErrNotEnoughData is returned by Update and Value while an indicator is
// still warming up. It is the expected state for the first observations of
// every stream and is never an application error.
var ErrNotEnoughData = errors.New("not enough data")

// InvalidParameterError reports a construction-time validation failure, or
// mismatched input array lengths in the batch functions. It is deterministic
// for a given call, so there is nothing to retry.
type InvalidParameterError struct {
	Indicator string
	Reason    string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s: invalid parameter: %s", e.Indicator, e.Reason)
}

func invalidParamf(indicator, format string, args ...interface{}) error {
	return &InvalidParameterError{
		Indicator: indicator,
		Reason:    fmt.Sprintf(format, args...),
	}
}
