package entity

import (
	"encoding/json"
	"fmt"
	"maps"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// Document is a record exactly as the realtime database returns it: a JSON
// object decoded into generic values. Numbers are always float64.
type Document map[string]any

// Clone returns a copy of the top-level fields.
func (d Document) Clone() Document {
	if d == nil {
		return Document{}
	}

	return maps.Clone(d)
}

// WithField returns a copy of the document with one field replaced.
// The receiver is never modified.
func (d Document) WithField(name string, value any) Document {
	next := d.Clone()
	next[name] = value

	return next
}

// Has reports whether the field is present.
func (d Document) Has(name string) bool {
	_, ok := d[name]

	return ok
}

// String returns the field rendered as a string, or "" when it is absent.
func (d Document) String(name string) string {
	v, ok := d[name]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}

// NormalizeDocument converts any JSON-encodable value into a Document the way
// the realtime database would hand it back.
func NormalizeDocument(v any) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode document")
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "document is not a JSON object")
	}

	return doc, nil
}

// DecodeDocument decodes a document into a typed record. Decoding is weakly
// typed because the mobile clients write numbers and strings interchangeably
// (e.g. bookingNumber as 4821 or "4821").
func DecodeDocument(doc Document, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return errors.Wrap(err, "failed to build document decoder")
	}

	if err := decoder.Decode(map[string]any(doc)); err != nil {
		return errors.Wrap(err, "failed to decode document")
	}

	return nil
}
