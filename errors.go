// seehuhn.de/go/mask - binary segmentation masks for image annotations
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package mask

import (
	"errors"
	"fmt"
)

// Error kinds. Use [errors.Is] to test for them.
var (
	// ErrMalformedEncoding reports a compact run-length string which
	// cannot be decoded.
	ErrMalformedEncoding = errors.New("malformed encoding")

	// ErrShapeMismatch reports inconsistent sizes: a run sum which does not
	// match the declared size, ragged pixel rows, or polygon coordinates
	// outside the canvas.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrEmptyInput reports a polygon segmentation without polygons.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvariant reports a violated internal invariant.  This indicates a
	// bug in this package, not a problem with the input.
	ErrInvariant = errors.New("internal invariant violated")
)

// Error is the error type returned by this package.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return "mask: " + e.Kind.Error()
	}
	return fmt.Sprintf("mask: %s: %s", e.Kind.Error(), e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

func malformedf(format string, args ...any) error {
	return &Error{Kind: ErrMalformedEncoding, Msg: fmt.Sprintf(format, args...)}
}

func shapef(format string, args ...any) error {
	return &Error{Kind: ErrShapeMismatch, Msg: fmt.Sprintf(format, args...)}
}

func emptyf(format string, args ...any) error {
	return &Error{Kind: ErrEmptyInput, Msg: fmt.Sprintf(format, args...)}
}

func invariantf(format string, args ...any) error {
	return &Error{Kind: ErrInvariant, Msg: fmt.Sprintf(format, args...)}
}
