package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"ukdtimers/internal/model"
)

// extraCollection holds top-level document keys that are not collections.
const extraCollection = "_extra"

var collections = []string{"users", "subjects", "absences", "creators"}

// record is one element of one collection, as stored by the bolt and SQL
// backends.
type record struct {
	Collection string
	Position   int
	Body       []byte
}

type extraEntry struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// flatten splits doc into records, keeping each collection's order in
// Position.
func flatten(doc *model.Document) ([]record, error) {
	data, err := encodeJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("split document: %w", err)
	}

	var out []record
	for _, name := range collections {
		var items []json.RawMessage
		if err := json.Unmarshal(top[name], &items); err != nil {
			return nil, fmt.Errorf("split %s: %w", name, err)
		}
		for i, item := range items {
			out = append(out, record{Collection: name, Position: i, Body: item})
		}
		delete(top, name)
	}

	keys := make([]string, 0, len(top))
	for k := range top {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i, k := range keys {
		body, err := encodeJSON(extraEntry{Key: k, Value: top[k]})
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", k, err)
		}
		out = append(out, record{Collection: extraCollection, Position: i, Body: body})
	}
	return out, nil
}

// assemble rebuilds a document from records. Records of one collection must
// arrive in Position order.
func assemble(records []record) (*model.Document, error) {
	top := map[string]json.RawMessage{}
	items := map[string][]json.RawMessage{}
	for _, name := range collections {
		items[name] = []json.RawMessage{}
	}

	for _, r := range records {
		if r.Collection == extraCollection {
			var e extraEntry
			if err := json.Unmarshal(r.Body, &e); err != nil {
				return nil, fmt.Errorf("decode document key: %w", err)
			}
			top[e.Key] = e.Value
			continue
		}
		items[r.Collection] = append(items[r.Collection], json.RawMessage(r.Body))
	}
	for name, list := range items {
		data, err := encodeJSON(list)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", name, err)
		}
		top[name] = data
	}

	data, err := encodeJSON(top)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &doc, nil
}

func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
