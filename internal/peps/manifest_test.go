package peps

import (
	"strconv"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAtoi(t *testing.T, s string) int {
	t.Helper()
	n, err := strconv.Atoi(s)
	require.NoError(t, err)
	return n
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"pep heading", "# PEP 8 -- Style Guide for Python Code\n\ntext", "Style Guide for Python Code"},
		{"single dash", "# PEP 20 - The Zen of Python\n", "The Zen of Python"},
		{"plain heading", "\n## Some Title\n", "Some Title"},
		{"title field wins", "# PEP 1 -- Heading\nTitle: Field Title\n", "Field Title"},
		{"no heading", "just text\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTitle([]byte(tt.content)))
		})
	}
}

func TestBuildManifest_SortsAndSkipsOtherFiles(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "pep-0257.md", []byte("# PEP 257 -- Docstring Conventions\n"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "pep-0008.md", []byte("# PEP 8 -- Style Guide\n"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "README.md", []byte("# readme\n"), 0644))
	require.NoError(t, afero.WriteFile(fsys, ManifestFile, []byte("peps: []\n"), 0644))

	m, err := BuildManifest(fsys)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Number: 8, Title: "Style Guide", File: "pep-0008.md"},
		{Number: 257, Title: "Docstring Conventions", File: "pep-0257.md"},
	}, m.Entries)
}

func TestWriteManifest_LoadManifest(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "pep-0020.md", []byte("# PEP 20 -- Zen\n"), 0644))

	built, err := BuildManifest(fsys)
	require.NoError(t, err)
	require.NoError(t, WriteManifest(fsys, built))

	loaded, err := LoadManifest(fsys)
	require.NoError(t, err)
	assert.Equal(t, built, loaded)
	assert.NoError(t, loaded.Validate(fsys))
}

func TestManifest_ValidateMissingFile(t *testing.T) {
	m := Manifest{Entries: []Entry{{Number: 9, File: "pep-0009.md"}}}
	err := m.Validate(afero.NewMemMapFs())
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	m = Manifest{Entries: []Entry{{Number: 9, File: "sub/pep-0009.md"}}}
	assert.Error(t, m.Validate(afero.NewMemMapFs()))
}

func TestManifest_Lookup(t *testing.T) {
	m := Manifest{Entries: []Entry{{Number: 1}, {Number: 8, Title: "x"}, {Number: 20}}}
	e, ok := m.Lookup(8)
	assert.True(t, ok)
	assert.Equal(t, "x", e.Title)
	_, ok = m.Lookup(9)
	assert.False(t, ok)
}
