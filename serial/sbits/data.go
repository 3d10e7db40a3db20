package sbits

import (
	"fmt"
)

type (
	// Reader is a cursor over a byte slice that consumes bits MSB-first
	// within each byte.
	Reader struct {
		data   []byte
		offset int
	}
	// Writer builds a byte slice bit by bit, MSB-first within each
	// byte. Bytes are extended on demand, so unwritten trailing bits
	// stay zero.
	Writer struct {
		data   []byte
		offset int
	}
	ErrOutOfData struct {
		Requested int
		Remaining int
		Offset    int
	}
	ErrVarIntOverflow struct {
		Offset int
	}
)

func (r ErrOutOfData) Error() string {
	return fmt.Sprintf(
		`requested %d bits with %d remaining at bit offset %d`,
		r.Requested, r.Remaining, r.Offset,
	)
}

func (r ErrVarIntOverflow) Error() string {
	return fmt.Sprintf(
		`varint continues past 4 nibbles at bit offset %d`,
		r.Offset,
	)
}
