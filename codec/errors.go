// SPDX-License-Identifier: MIT
// Package codec: sentinel error set.
// Messages are prefixed with "codec: ..."; decoding failures from the
// underlying YAML/JSON libraries are wrapped, never replaced.

package codec

import "errors"

var (
	// ErrUnknownFormat is returned for a format name or file extension that is
	// neither YAML nor JSON.
	ErrUnknownFormat = errors.New("codec: unknown format")

	// ErrDocumentShape is returned when the declared rows/cols disagree with
	// the values block, or the values block is missing.
	ErrDocumentShape = errors.New("codec: document shape mismatch")

	// ErrEmptyDocument is returned when the input holds no document at all.
	ErrEmptyDocument = errors.New("codec: empty document")
)

// Operation tags for error wrapping.
const (
	opDecode    = "Decode"
	opEncode    = "Encode"
	opReadFile  = "ReadFile"
	opWriteFile = "WriteFile"
)
