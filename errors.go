package lshamp

import "errors"

var (
	// ErrInvalidArgument is returned when a constructor or search is given a
	// value outside its contract, such as a zero universe or table size.
	ErrInvalidArgument = errors.New("lshamp: invalid argument")

	// ErrEncoding is returned when a string key is not valid UTF-8.
	ErrEncoding = errors.New("lshamp: invalid utf-8 input")
)
