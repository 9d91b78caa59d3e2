package model

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Extra holds JSON fields a record type does not model so they survive a
// load/save cycle unchanged.
type Extra map[string]json.RawMessage

// Clone returns a shallow copy; raw values are never mutated in place.
func (e Extra) Clone() Extra {
	if e == nil {
		return nil
	}
	out := make(Extra, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// marshalJSON encodes v without HTML escaping, matching what the document
// file has always contained.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func splitExtra(data []byte, known ...string) (Extra, error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(all, k)
	}
	if len(all) == 0 {
		return nil, nil
	}
	for k, v := range all {
		compact, err := compactRaw(v)
		if err != nil {
			return nil, err
		}
		all[k] = compact
	}
	return all, nil
}

// decodeRecord fills dst, a pointer to a plain record struct, from the object
// in data. A value of the wrong type leaves its field zero instead of failing
// the whole record. The returned Extra holds the unknown keys plus every
// known key whose source value dst would encode as absent or zero instead,
// such as an empty string dropped by omitempty or a null id.
func decodeRecord(data []byte, dst any, known ...string) (Extra, error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	var typeErr *json.UnmarshalTypeError
	if err := json.Unmarshal(data, dst); err != nil && !errors.As(err, &typeErr) {
		return nil, err
	}
	base, err := marshalJSON(dst)
	if err != nil {
		return nil, err
	}
	var encoded map[string]json.RawMessage
	if err := json.Unmarshal(base, &encoded); err != nil {
		return nil, err
	}

	isKnown := make(map[string]bool, len(known))
	for _, k := range known {
		isKnown[k] = true
	}
	var extra Extra
	for k, v := range all {
		compact, err := compactRaw(v)
		if err != nil {
			return nil, err
		}
		if isKnown[k] {
			enc, ok := encoded[k]
			if ok && (!isZeroJSON(enc) || bytes.Equal(enc, compact)) {
				continue
			}
		}
		if extra == nil {
			extra = make(Extra)
		}
		extra[k] = compact
	}
	return extra, nil
}

func isZeroJSON(v json.RawMessage) bool {
	s := string(v)
	return s == "0" || s == `""`
}

// compactRaw strips insignificant whitespace so a value compares equal no
// matter how the file it came from was indented.
func compactRaw(v json.RawMessage) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, v); err != nil {
		return nil, err
	}
	return json.RawMessage(buf.Bytes()), nil
}

func mergeExtra(base []byte, extra Extra) ([]byte, error) {
	if len(extra) == 0 {
		return base, nil
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(base, &all); err != nil {
		return nil, err
	}
	for k, v := range extra {
		// A typed field that is still zero gives way to the kept source value.
		if cur, ok := all[k]; !ok || isZeroJSON(cur) {
			all[k] = v
		}
	}
	return marshalJSON(all)
}
