package gkverb

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBatch(t *testing.T) {
	in := strings.NewReader(
		"pres:παυ,pai,ppi\n" +
			"aor:παυσ\n" +
			"\n" +
			"fut:παυσ, fai ,fmi\n")
	entries, err := ReadBatch(in)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "pres:παυ", entries[0].Stem)
	assert.Equal(t, []Code{PAI, PPI}, entries[0].Codes)

	assert.Equal(t, "aor:παυσ", entries[1].Stem)
	assert.Empty(t, entries[1].Codes)

	assert.Equal(t, "fut:παυσ", entries[2].Stem)
	assert.Equal(t, []Code{FAI, FMI}, entries[2].Codes)
}

func TestFormsWriterSkipsAbsentCodes(t *testing.T) {
	vb := NewVerb("pres:παυ")
	requested := vb.ConjugateAll([]Code{PAI, "pfai", IPI})

	var buf bytes.Buffer
	fw := NewFormsWriter(&buf)
	require.NoError(t, fw.WriteVerb(vb, requested))
	require.NoError(t, fw.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// pfai computed nothing: two records only, request order preserved
	require.Len(t, lines, 2)
	assert.Equal(t, "παυω,παυεις,παυει,παυομεν,παυετε,παυουσι", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "ἐπαυομην,"))
}

func TestWriteFormsFile(t *testing.T) {
	vb := NewVerb("pres:παυ")
	requested := vb.ConjugateAll([]Code{PAI})

	path := filepath.Join(t.TempDir(), "forms.csv")
	require.NoError(t, WriteFormsFile(path, vb, requested))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "παυω,παυεις,παυει,παυομεν,παυετε,παυουσι\n", string(data))
}

func TestWriteFormsFileBadPath(t *testing.T) {
	vb := NewVerb("pres:παυ")
	requested := vb.ConjugateAll([]Code{PAI})
	err := WriteFormsFile(filepath.Join(t.TempDir(), "missing", "forms.csv"), vb, requested)
	require.Error(t, err)
}

func TestReadBatchFileMissing(t *testing.T) {
	_, err := ReadBatchFile(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}
