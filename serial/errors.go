package serial

import (
	"fmt"

	"github.com/monokrome/bl4-sub000/serial/stoken"
)

type (
	ErrInvalidPrefix struct {
		Found string
	}
	ErrBadMagic struct {
		Got uint32
	}
	ErrUnknownLayout struct {
		Kind stoken.Kind
	}
	ErrIncompatibleLayout struct {
		A LayoutKind
		B LayoutKind
	}
	ErrIncompatibleCategory struct {
		A uint32
		B uint32
	}
)

func (err ErrInvalidPrefix) Error() string {
	return fmt.Sprintf(`serial does not start with %q (found %q)`, PrefixMarker, err.Found)
}

func (err ErrBadMagic) Error() string {
	return fmt.Sprintf("payload magic is %#b instead of %#b", err.Got, Magic)
}

func (err ErrUnknownLayout) Error() string {
	return fmt.Sprintf("first token %q fits neither known layout", err.Kind)
}

func (err ErrIncompatibleLayout) Error() string {
	return fmt.Sprintf("layouts differ: %q and %q", err.A, err.B)
}

func (err ErrIncompatibleCategory) Error() string {
	return fmt.Sprintf("categories differ: %d and %d", err.A, err.B)
}
