package codec

import (
	"github.com/fxamacker/cbor/v2"
)

// cborEnc is configured with Core Deterministic Encoding (RFC 8949 §4.2):
// sorted map keys, smallest integer encoding, no indefinite-length items.
// The same logical data always produces identical bytes.
var cborEnc cbor.EncMode

// cborDec accepts standard CBOR. Unknown fields are silently ignored, same
// as the JSON codec.
var cborDec cbor.DecMode

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}
	cborDec, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// CBOR implements Codec with RFC 8949 binary encoding. Compact and
// deterministic, at the cost of files no text editor can inspect. JSON
// formatting options do not apply to it.
type CBOR struct{}

func (CBOR) Marshal(v any) ([]byte, error) {
	return cborEnc.Marshal(v)
}

func (CBOR) Unmarshal(data []byte, v any) error {
	return cborDec.Unmarshal(data, v)
}

func (CBOR) Name() string {
	return "cbor"
}
