// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bundle

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbb3kernel/tbb3kernel.github.io/pkg/types"
)

func TestEncodeFrontMatter(t *testing.T) {
	tests := []struct {
		name string
		fm   types.FrontMatter
		want []string
	}{
		{
			name: "quotes in title are escaped",
			fm:   types.FrontMatter{Title: `The "best" plot`, Date: fixedDate, Tags: []string{}},
			want: []string{`title: "The \"best\" plot"`},
		},
		{
			name: "draft and tags",
			fm:   types.FrontMatter{Title: "T", Date: fixedDate, Draft: true, Tags: []string{"ml", "pandas"}},
			want: []string{"draft: true", `tags: ["ml", "pandas"]`},
		},
		{
			name: "nil tags render as empty list",
			fm:   types.FrontMatter{Title: "T", Date: fixedDate},
			want: []string{"tags: []", "date: 2026-03-07"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := EncodeFrontMatter(tt.fm)
			require.NoError(t, err)

			s := string(out)
			assert.True(t, strings.HasPrefix(s, "---\n"), "missing opening delimiter: %q", s)
			assert.True(t, strings.HasSuffix(s, "\n---\n\n"), "missing closing delimiter: %q", s)
			lines := strings.Split(s, "\n")
			for _, w := range tt.want {
				assert.Contains(t, lines, w)
			}
		})
	}
}

func TestReadIndex(t *testing.T) {
	cfg := testConfig(t)
	pc := types.ProcessedContent{Title: `Fit: "linear" model`, Summary: "short", Body: "\n## Data\n"}

	dest, err := Assemble(cfg, converted(t, t.TempDir(), nil), pc, &bytes.Buffer{})
	require.NoError(t, err)

	fm, body, err := ReadIndex(dest)
	require.NoError(t, err)
	assert.Equal(t, pc.Title, fm.Title)
	assert.Equal(t, "short", fm.Summary)
	assert.Equal(t, DefaultPostType, fm.PostType)
	assert.False(t, fm.Draft)
	assert.Empty(t, fm.Tags)
	assert.Equal(t, "2026-03-07", fm.Date.Format(dateLayout))
	assert.Contains(t, string(body), "## Data")
}

func TestReadIndexErrors(t *testing.T) {
	t.Run("missing bundle", func(t *testing.T) {
		_, _, err := ReadIndex(filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "opening")
	})
	t.Run("no front matter", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "index.md"), []byte("# plain\n"), 0o644))
		_, _, err := ReadIndex(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing front matter")
	})
}
