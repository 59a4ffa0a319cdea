package store

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// prepare validates doc, drops null fields and makes sure it carries an id.
// It returns a fresh copy and never modifies doc.
func prepare(collection string, doc Document) (Document, error) {
	if collection == "" {
		return nil, ErrEmptyCollection
	}

	clean := dropNulls(doc)
	switch id := clean["id"].(type) {
	case nil:
		clean["id"] = uuid.NewString()
	case string:
		if id == "" {
			clean["id"] = uuid.NewString()
		}
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidID, id)
	}
	return clean, nil
}

// dropNulls copies doc without nil values, descending into nested objects.
func dropNulls(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		if v == nil {
			continue
		}
		out[k] = cloneValue(v, true)
	}
	return out
}

// merge writes the keys of patch over base. Nested objects merge key by key.
func merge(base, patch Document) Document {
	out := cloneDocument(base)
	if out == nil {
		out = make(Document, len(patch))
	}
	for k, v := range patch {
		pm, pIsMap := asMap(v)
		bm, bIsMap := asMap(out[k])
		if pIsMap && bIsMap {
			out[k] = map[string]any(merge(bm, pm))
			continue
		}
		out[k] = cloneValue(v, false)
	}
	return out
}

func asMap(v any) (Document, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Document:
		return m, true
	}
	return nil, false
}

func cloneDocument(doc Document) Document {
	if doc == nil {
		return nil
	}
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = cloneValue(v, false)
	}
	return out
}

func cloneValue(v any, skipNulls bool) any {
	switch val := v.(type) {
	case map[string]any:
		if skipNulls {
			return map[string]any(dropNulls(val))
		}
		return map[string]any(cloneDocument(val))
	case Document:
		if skipNulls {
			return map[string]any(dropNulls(val))
		}
		return map[string]any(cloneDocument(val))
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item, skipNulls)
		}
		return out
	default:
		return val
	}
}

func encodeDocument(doc Document) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}
	return string(data), nil
}

func decodeDocument(data string) (Document, error) {
	var doc Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return doc, nil
}

func cloneAll(docs []Document) []Document {
	out := make([]Document, len(docs))
	for i, d := range docs {
		out[i] = cloneDocument(d)
	}
	return out
}
