package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGobRoundTrip(t *testing.T) {
	c := Gob{}
	value := document{Number: 423, Tags: []string{"Thing", "Other Thing"}}

	data, err := c.Marshal(value)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	var got document
	require.NoError(t, c.Unmarshal(data, &got))
	assert.Equal(t, value, got)
}

func TestGobRejectsForeignBytes(t *testing.T) {
	c := Gob{}

	var got document
	err := c.Unmarshal([]byte(`{"number":423}`), &got)

	assert.Error(t, err)
}
