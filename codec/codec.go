// SPDX-License-Identifier: MIT

// Package codec - partition documents on disk.
//
// A document carries the declared shape next to the row-major values:
//
//	rows: 3
//	cols: 4
//	values: [[0.5, 0.7, 0.3, 0.0], [0.4, 0.2, 0.4, 0.1], [0.1, 0.1, 0.3, 0.9]]
//
// rows and cols are optional on input (0 means "infer"); when present they
// must match the values block. Output always carries both.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fuzzypart/partition"
)

// Document is the serialized form of a partition.
type Document struct {
	Rows   int         `yaml:"rows" json:"rows"`
	Cols   int         `yaml:"cols" json:"cols"`
	Values [][]float64 `yaml:"values,flow" json:"values"`
}

// FromPartition snapshots p into a Document.
func FromPartition(p *partition.Partition) Document {
	rows, cols := p.Shape()

	return Document{Rows: rows, Cols: cols, Values: p.Values()}
}

// Partition checks the declared shape and builds the partition.
//
// Errors:
//   - ErrDocumentShape when values is missing or disagrees with rows/cols.
//   - Any error from partition.New (malformed rows, NaN/Inf).
func (d Document) Partition() (*partition.Partition, error) {
	if len(d.Values) == 0 {
		return nil, fmt.Errorf("no values: %w", ErrDocumentShape)
	}
	if d.Rows != 0 && d.Rows != len(d.Values) {
		return nil, fmt.Errorf("rows=%d but %d value rows: %w", d.Rows, len(d.Values), ErrDocumentShape)
	}
	if d.Cols != 0 {
		for i, row := range d.Values {
			if len(row) != d.Cols {
				return nil, fmt.Errorf("cols=%d but row %d has %d values: %w", d.Cols, i, len(row), ErrDocumentShape)
			}
		}
	}

	return partition.New(d.Values)
}

// Decode reads one document in the given format from r.
// Unknown fields are rejected in both formats.
func Decode(r io.Reader, f Format) (*partition.Partition, error) {
	var doc Document
	var err error
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	default:
		return nil, fmt.Errorf("%s(%d): %w", opDecode, f, ErrUnknownFormat)
	}
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s %s: %w", opDecode, f, ErrEmptyDocument)
	}
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", opDecode, f, err)
	}

	p, err := doc.Partition()
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", opDecode, f, err)
	}

	return p, nil
}

// Encode writes p to w as one document in the given format.
func Encode(w io.Writer, p *partition.Partition, f Format) error {
	if p == nil {
		return fmt.Errorf("%s: %w", opEncode, partition.ErrNilPartition)
	}
	doc := FromPartition(p)

	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("%s %s: %w", opEncode, f, err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("%s %s: %w", opEncode, f, err)
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("%s %s: %w", opEncode, f, err)
		}
	default:
		return fmt.Errorf("%s(%d): %w", opEncode, f, ErrUnknownFormat)
	}

	return nil
}

// ReadFile decodes the partition stored at path; the format follows the extension.
func ReadFile(path string) (*partition.Partition, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReadFile, err)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReadFile, err)
	}
	defer fh.Close()

	p, err := Decode(fh, f)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", opReadFile, path, err)
	}

	return p, nil
}

// WriteFile encodes p to path (mode 0644), replacing any existing file.
// The format follows the extension.
func WriteFile(path string, p *partition.Partition) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return fmt.Errorf("%s: %w", opWriteFile, err)
	}
	fh, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%s: %w", opWriteFile, err)
	}
	if err = Encode(fh, p, f); err != nil {
		_ = fh.Close()
		return fmt.Errorf("%s %s: %w", opWriteFile, path, err)
	}
	if err = fh.Close(); err != nil {
		return fmt.Errorf("%s %s: %w", opWriteFile, path, err)
	}

	return nil
}
