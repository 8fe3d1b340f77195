package envault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Mode
		wantErr bool
	}{
		{name: "cbc", input: "cbc", want: ModeCBC},
		{name: "gcm", input: "gcm", want: ModeGCM},
		{name: "uppercase", input: "CBC", want: ModeCBC},
		{name: "mixed case", input: "Gcm", want: ModeGCM},
		{name: "empty defaults to cbc", input: "", want: ModeCBC},
		{name: "unknown mode", input: "ctr", wantErr: true},
		{name: "garbage", input: "not-a-mode", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConfigurationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "cbc", ModeCBC.String())
	assert.Equal(t, "gcm", ModeGCM.String())
}
