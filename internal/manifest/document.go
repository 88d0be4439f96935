package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// NameKey is the manifest member rewritten when scaffolding a project.
const NameKey = "name"

type member struct {
	key   string
	value json.RawMessage
}

// Document is a JSON object that remembers the order of its top-level keys.
type Document struct {
	members []member
}

// Parse decodes data as a JSON object. A duplicate key keeps the position of
// its first occurrence and the value of its last.
func Parse(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("reading JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("manifest must be a JSON object")
	}

	doc := &Document{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading object key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v where object key expected", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("reading value of %q: %w", key, err)
		}
		doc.put(key, raw)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("reading end of object: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after top-level object")
	}

	return doc, nil
}

// Keys returns the top-level keys in document order.
func (d *Document) Keys() []string {
	keys := make([]string, len(d.members))
	for i, m := range d.members {
		keys[i] = m.key
	}
	return keys
}

// Get returns the raw JSON value stored under key.
func (d *Document) Get(key string) (json.RawMessage, bool) {
	for _, m := range d.members {
		if m.key == key {
			return m.value, true
		}
	}
	return nil, false
}

// GetString returns the value under key when it is a JSON string.
func (d *Document) GetString(key string) (string, bool) {
	raw, ok := d.Get(key)
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Set stores value under key. Existing keys keep their position; new keys
// are appended.
func (d *Document) Set(key string, value any) error {
	raw, err := encode(value)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}
	d.put(key, raw)
	return nil
}

// Name returns the manifest name, or "" when absent or not a string.
func (d *Document) Name() string {
	name, _ := d.GetString(NameKey)
	return name
}

// SetName overwrites the manifest name.
func (d *Document) SetName(name string) error {
	return d.Set(NameKey, name)
}

// Marshal serializes the document with two-space indentation and no
// trailing newline.
func (d *Document) Marshal() ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, m := range d.members {
		if i > 0 {
			compact.WriteByte(',')
		}
		key, err := encode(m.key)
		if err != nil {
			return nil, err
		}
		compact.Write(key)
		compact.WriteByte(':')
		compact.Write(m.value)
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("formatting manifest: %w", err)
	}
	return out.Bytes(), nil
}

func (d *Document) put(key string, raw json.RawMessage) {
	for i := range d.members {
		if d.members[i].key == key {
			d.members[i].value = raw
			return
		}
	}
	d.members = append(d.members, member{key: key, value: raw})
}

// encode marshals v without HTML escaping, so "<" and "&" survive as-is.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
