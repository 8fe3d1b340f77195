package codec

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Struct tag grammar. The root package re-exports these names.
const (
	TagName     = "envault"
	TagReadOnly = "readonly"
	TagSkip     = "-"
)

// JSONOptions control how the JSON codec renders and matches struct fields.
// The zero value gives compact output, all exported fields, case-insensitive
// matching, and read-only fields included, which is what encoding/json does.
type JSONOptions struct {
	// Pretty renders multi-line output with two-space indentation.
	Pretty bool

	// OnlyTagged limits the codec to fields carrying a json tag. Untagged
	// exported fields are ignored in both directions.
	OnlyTagged bool

	// CaseSensitive requires JSON keys to match field names exactly when
	// decoding instead of the default case-insensitive matching.
	CaseSensitive bool

	// OmitReadOnly drops fields tagged `envault:"readonly"` from the
	// output. Such fields are still populated when decoding.
	OmitReadOnly bool
}

// JSON implements Codec on the json-iterator runtime, which exposes the
// field-matching knobs encoding/json hardcodes.
type JSON struct {
	api jsoniter.API
}

// NewJSON builds a JSON codec from the given options. The returned codec is
// immutable and safe for concurrent use.
func NewJSON(opts JSONOptions) JSON {
	cfg := jsoniter.Config{
		EscapeHTML:             true,
		ValidateJsonRawMessage: true,
		CaseSensitive:          opts.CaseSensitive,
		OnlyTaggedField:        opts.OnlyTagged,
	}
	if opts.Pretty {
		cfg.IndentionStep = 2
	}
	api := cfg.Froze()
	api.RegisterExtension(&fieldTagExtension{omitReadOnly: opts.OmitReadOnly})
	return JSON{api: api}
}

func (j JSON) Marshal(v any) ([]byte, error) {
	return j.api.Marshal(v)
}

func (j JSON) Unmarshal(data []byte, v any) error {
	return j.api.Unmarshal(data, v)
}

func (j JSON) Name() string {
	return "json"
}

// fieldTagExtension applies the envault struct tag. `envault:"-"` hides a
// field in both directions; `envault:"readonly"` drops it from the output
// when the codec was built with OmitReadOnly. Directives combine with
// commas, like the json tag.
type fieldTagExtension struct {
	jsoniter.DummyExtension
	omitReadOnly bool
}

func (ext *fieldTagExtension) UpdateStructDescriptor(structDescriptor *jsoniter.StructDescriptor) {
	for _, binding := range structDescriptor.Fields {
		for _, directive := range strings.Split(binding.Field.Tag().Get(TagName), ",") {
			switch directive {
			case TagSkip:
				binding.ToNames = []string{}
				binding.FromNames = []string{}
			case TagReadOnly:
				if ext.omitReadOnly {
					binding.ToNames = []string{}
				}
			}
		}
	}
}
