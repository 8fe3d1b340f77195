package envault

import "github.com/hengadev/envault/internal/codec"

const (
	STRUCT_TAG = codec.TagName

	// tags
	READONLY = codec.TagReadOnly
	SKIP     = codec.TagSkip
)
