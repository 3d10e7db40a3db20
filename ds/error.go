package ds

import (
	"fmt"
)

type (
	// ErrUnreachableCode marks a branch the calling code has already
	// ruled out. Reaching it is a bug in the caller, not bad input.
	ErrUnreachableCode struct {
		Caller string
	}
)

func (r ErrUnreachableCode) Error() string {
	return fmt.Sprintf("%s reached a branch its own dispatch rules out", r.Caller)
}
