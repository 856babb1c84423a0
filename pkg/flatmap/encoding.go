package flatmap

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
	"go.yaml.in/yaml/v3"
)

// ErrBadKeyType is returned when a key type does not encode to
// something the target format accepts as a map key.
var ErrBadKeyType = errors.New("flatmap: key does not encode to a JSON string or number")

// MarshalJSON encodes the map as a JSON object with the members in slot
// order. The key type must marshal to a JSON string or number.
func (m *FlatMap[K, V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := range m.items {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(m.items[i].Key)
		if err != nil {
			return nil, err
		}
		switch {
		case len(k) > 0 && k[0] == '"':
			buf.Write(k)
		case len(k) > 0 && (k[0] == '-' || (k[0] >= '0' && k[0] <= '9')):
			buf.WriteString(strconv.Quote(string(k)))
		default:
			return nil, ErrBadKeyType
		}
		buf.WriteByte(':')
		v, err := json.Marshal(m.items[i].Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the map, replacing its
// contents and keeping the members in document order. A duplicate key
// keeps the slot of its first occurrence with the last value decoded.
func (m *FlatMap[K, V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("flatmap: expected a JSON object")
	}
	m.Clear()
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		var key K
		if err = decodeJSONKey(tok.(string), &key); err != nil {
			return err
		}
		var value V
		if err = dec.Decode(&value); err != nil {
			return err
		}
		*m.GetOrInsert(key) = value
	}
	_, err = dec.Token() // closing brace
	return err
}

// decodeJSONKey turns an object member name back into a key: keys that
// marshaled as strings decode from the re-quoted form, numeric keys
// decode from the raw token. When both forms fail, both errors are
// returned together.
func decodeJSONKey[K comparable](s string, key *K) error {
	qerr := json.Unmarshal([]byte(strconv.Quote(s)), key)
	if qerr == nil {
		return nil
	}
	rerr := json.Unmarshal([]byte(s), key)
	if rerr == nil {
		return nil
	}
	return errors.Join(qerr, rerr)
}

// MarshalYAML encodes the map as a YAML mapping node with the pairs in
// slot order.
func (m *FlatMap[K, V]) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for i := range m.items {
		key := new(yaml.Node)
		if err := key.Encode(m.items[i].Key); err != nil {
			return nil, err
		}
		value := new(yaml.Node)
		if err := value.Encode(m.items[i].Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping into the map, replacing its
// contents and keeping the pairs in document order.
func (m *FlatMap[K, V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return errors.New("flatmap: expected a YAML mapping")
	}
	m.Clear()
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key K
		if err := node.Content[i].Decode(&key); err != nil {
			return err
		}
		var value V
		if err := node.Content[i+1].Decode(&value); err != nil {
			return err
		}
		*m.GetOrInsert(key) = value
	}
	return nil
}

// EncodeMsgpack encodes the map as a msgpack map with the pairs in
// slot order.
func (m *FlatMap[K, V]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(len(m.items)); err != nil {
		return err
	}
	for i := range m.items {
		if err := enc.Encode(m.items[i].Key); err != nil {
			return err
		}
		if err := enc.Encode(m.items[i].Value); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack decodes a msgpack map into the map, replacing its
// contents and keeping the pairs in stream order.
func (m *FlatMap[K, V]) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeMapLen()
	if err != nil {
		return err
	}
	m.Clear()
	m.Reserve(n)
	for i := 0; i < n; i++ {
		var key K
		if err = dec.Decode(&key); err != nil {
			return err
		}
		var value V
		if err = dec.Decode(&value); err != nil {
			return err
		}
		*m.GetOrInsert(key) = value
	}
	return nil
}
