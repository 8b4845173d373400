// internal/output/document.go

// Package output assembles the back-calculation result document:
//
//	{
//	    "format": <template projection>,
//	    "<structure-stem>": [values...],
//	    ...
//	}
//
// Key order is part of the contract ("format" first, structures in input
// order), so the document is marshalled by hand rather than through a map.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Document is an insertion-ordered JSON object.
type Document struct {
	keys []string
	vals []json.RawMessage
}

// NewDocument returns a document whose first key is "format". The format
// key is never omitted, even when every structure in the batch failed.
func NewDocument(format any) (*Document, error) {
	d := &Document{}
	if err := d.Set("format", format); err != nil {
		return nil, err
	}
	return d, nil
}

// Set appends (or replaces) a key with the JSON encoding of v.
func (d *Document) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	for i, k := range d.keys {
		if k == key {
			d.vals[i] = raw
			return nil
		}
	}
	d.keys = append(d.keys, key)
	d.vals = append(d.vals, raw)
	return nil
}

// Len returns the number of keys, the format key included.
func (d *Document) Len() int { return len(d.keys) }

// Encode writes the document as indented JSON.
func (d *Document) Encode(w io.Writer) error {
	var raw bytes.Buffer
	raw.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			raw.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return err
		}
		raw.Write(kb)
		raw.WriteByte(':')
		raw.Write(d.vals[i])
	}
	raw.WriteByte('}')

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw.Bytes(), "", "    "); err != nil {
		return err
	}
	pretty.WriteByte('\n')
	_, err := w.Write(pretty.Bytes())
	return err
}
