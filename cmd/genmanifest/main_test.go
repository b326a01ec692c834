package main

import (
	"testing"

	"opep/internal/peps"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_WritesManifest(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "pep-0020.md", []byte("# PEP 20 -- The Zen of Python\n"), 0644))
	checkOnly = false

	require.NoError(t, run(fsys))

	m, err := peps.LoadManifest(fsys)
	require.NoError(t, err)
	assert.Equal(t, []peps.Entry{{Number: 20, Title: "The Zen of Python", File: "pep-0020.md"}}, m.Entries)
}

func TestRun_CheckDetectsStaleManifest(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "pep-0020.md", []byte("# PEP 20 -- The Zen of Python\n"), 0644))
	require.NoError(t, afero.WriteFile(fsys, peps.ManifestFile, []byte("peps: []\n"), 0644))

	checkOnly = true
	t.Cleanup(func() { checkOnly = false })

	err := run(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stale")

	checkOnly = false
	require.NoError(t, run(fsys))
	checkOnly = true
	assert.NoError(t, run(fsys))
}
