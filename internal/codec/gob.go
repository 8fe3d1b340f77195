package codec

import (
	"bytes"
	"encoding/gob"
)

// Gob implements Codec with the encoding/gob package. It offers efficient
// binary encoding specifically for Go data types, often smaller and faster
// than JSON, but the files cannot be read by non-Go systems. Choose it when
// the same program writes and reads the data.
type Gob struct{}

func (Gob) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (Gob) Unmarshal(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

func (Gob) Name() string {
	return "gob"
}
