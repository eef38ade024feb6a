package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/offer-finder/cmd/ofctl/cmd"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		format   string
		wantFile string
		wantErr  bool
	}{
		{format: "markdown", wantFile: "ofctl_find_alternatives.md"},
		{format: "man", wantFile: "ofctl-stores-rules-put.1"},
		{format: "html", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			dir := t.TempDir()
			root := cmd.Root()
			root.DisableAutoGenTag = true

			err := generate(root, tt.format, dir)
			if tt.wantErr {
				require.ErrorContains(t, err, "unknown format")
				return
			}
			require.NoError(t, err)

			_, err = os.Stat(filepath.Join(dir, tt.wantFile))
			assert.NoError(t, err)
		})
	}
}
