package envault

import (
	"github.com/hengadev/envault/internal/codec"
)

// Codec defines an interface for converting Go values to and from byte
// arrays. Implementations handle the encoding of values before encryption
// and the decoding after decryption. Different implementations offer varying
// trade-offs in terms of readability, size, and interoperability.
type Codec interface {
	// Marshal takes any value and returns its byte representation and an
	// error if encoding fails.
	Marshal(v any) ([]byte, error)

	// Unmarshal takes a byte array and a pointer to the target value and
	// populates it with the decoded data.
	Unmarshal(data []byte, v any) error

	// Name identifies the wire format in error messages and logs.
	Name() string
}

// NewCBORCodec returns a Codec writing RFC 8949 binary encoding. It is
// compact and deterministic, but the files cannot be inspected with a text
// editor and the Vault's JSON formatting options do not apply. Inject it
// with WithCodec.
func NewCBORCodec() Codec {
	return codec.CBOR{}
}

// NewGobCodec returns a Codec writing encoding/gob binary data. Efficient
// for Go-to-Go persistence, unreadable by anything else. Inject it with
// WithCodec.
func NewGobCodec() Codec {
	return codec.Gob{}
}
