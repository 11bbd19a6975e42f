package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFooter_SaveLoad_RoundTrip(t *testing.T) {
	f := &Footer{Validity: true, Title: "Test World", WorldID: 42}
	f.MarkPopulated()

	data, err := f.Save()
	require.NoError(t, err)

	got, err := LoadFooter(NewReader(data))
	require.NoError(t, err)
	require.Equal(t, f, got)
}

func TestFooter_Valid(t *testing.T) {
	tests := []struct {
		name   string
		footer Footer
		want   bool
	}{
		{"all set", Footer{Validity: true, Title: "W", WorldID: 1, populated: true}, true},
		{"not populated", Footer{Validity: true, Title: "W", WorldID: 1}, false},
		{"invalid flag false", Footer{Validity: false, Title: "W", WorldID: 1, populated: true}, false},
		{"empty title", Footer{Validity: true, Title: "", WorldID: 1, populated: true}, false},
		{"zero world id", Footer{Validity: true, Title: "W", WorldID: 0, populated: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.footer.Valid())
		})
	}
}
