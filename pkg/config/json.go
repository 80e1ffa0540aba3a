package config

import (
	"bytes"
	"encoding/json"
)

// JSON serialization preserves the tree's insertion order, which the
// encoding/json map path would not. Objects are built by hand; encoding/json
// is used only for string escaping. The output shape mirrors the classic
// fortiparse format: nested objects per block, edit tables under an "edit"
// key, single-token values as strings and multi-token values as arrays.

// MarshalJSON implements json.Marshaler.
func (c *Config) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeBody(&buf, &c.body, nil); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeBody(&buf, &n.body, n.edits); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler.
func (e *Entry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeBody(&buf, &e.body, nil); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler.
func (t *EditTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range t.ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, id); err != nil {
			return nil, err
		}
		if err := writeBody(&buf, &t.entries[id].body, nil); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler. Single-token values serialize as a
// plain string, multi-token values as an array of strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if len(v) == 1 {
		return json.Marshal(v[0])
	}
	return json.Marshal([]string(v))
}

func writeBody(buf *bytes.Buffer, b *body, edits *EditTable) error {
	buf.WriteByte('{')
	first := true
	comma := func() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
	}

	for _, key := range b.order {
		switch {
		case key == editKey && edits != nil:
			comma()
			if err := writeKey(buf, key); err != nil {
				return err
			}
			data, err := edits.MarshalJSON()
			if err != nil {
				return err
			}
			buf.Write(data)
		case b.nodes[key] != nil:
			comma()
			if err := writeKey(buf, key); err != nil {
				return err
			}
			data, err := b.nodes[key].MarshalJSON()
			if err != nil {
				return err
			}
			buf.Write(data)
		default:
			v, ok := b.settings[key]
			if !ok {
				continue
			}
			comma()
			if err := writeKey(buf, key); err != nil {
				return err
			}
			data, err := v.MarshalJSON()
			if err != nil {
				return err
			}
			buf.Write(data)
		}
	}

	buf.WriteByte('}')
	return nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	data, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(data)
	buf.WriteByte(':')
	return nil
}
