package dxf

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/text/encoding/charmap"
)

func TestDecodeReaderPassesThroughUTF8(t *testing.T) {
	src := "9\n$DWGCODEPAGE\n3\nANSI_1252\n1\nשלום\n"
	out, err := io.ReadAll(DecodeReader(strings.NewReader(src)))
	require.NoError(t, err)
	assert.Equal(t, src, string(out))
}

func TestDecodeReaderTranscodesDeclaredWindows1255(t *testing.T) {
	// "מתז" (sprinkler) encoded as Windows-1255 bytes.
	enc := charmap.Windows1255.NewEncoder()
	hebrew, err := enc.String("מתז")
	require.NoError(t, err)

	src := "9\n$DWGCODEPAGE\n3\nANSI_1255\n1\n" + hebrew + "\n"
	out, err := io.ReadAll(DecodeReader(strings.NewReader(src)))
	require.NoError(t, err)
	assert.Contains(t, string(out), "מתז")
}

func TestDecodeReaderFallsBackOnInvalidUTF8(t *testing.T) {
	enc := charmap.Windows1255.NewEncoder()
	hebrew, err := enc.String("גלאי עשן")
	require.NoError(t, err)

	// No codepage declaration at all; the bytes are not valid UTF-8.
	src := "1\n" + hebrew + "\n"
	out, err := io.ReadAll(DecodeReader(strings.NewReader(src)))
	require.NoError(t, err)
	assert.Contains(t, string(out), "גלאי עשן")
}

func TestDecodeReaderISO88598(t *testing.T) {
	enc := charmap.ISO8859_8.NewEncoder()
	hebrew, err := enc.String("מטף")
	require.NoError(t, err)

	src := "9\n$DWGCODEPAGE\n3\nISO-8859-8\n1\n" + hebrew + "\n"
	out, err := io.ReadAll(DecodeReader(bytes.NewReader([]byte(src))))
	require.NoError(t, err)
	assert.Contains(t, string(out), "מטף")
}

func TestParseFileDecodesLegacyCodepage(t *testing.T) {
	enc := charmap.Windows1255.NewEncoder()
	hebrew, err := enc.String("מתז")
	require.NoError(t, err)

	src := strings.Join([]string{
		"0", "SECTION", "2", "HEADER",
		"9", "$DWGCODEPAGE", "3", "ANSI_1255",
		"0", "ENDSEC",
		"0", "SECTION", "2", "ENTITIES",
		"0", "TEXT", "1", hebrew, "10", "0", "20", "0",
		"0", "ENDSEC", "0", "EOF",
	}, "\n") + "\n"

	path := t.TempDir() + "/plan.dxf"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	doc, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, doc.Entities.Texts, 1)
	assert.Equal(t, "מתז", doc.Entities.Texts[0].Text)
	assert.Equal(t, "ANSI_1255", doc.Header.CodePage)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(t.TempDir() + "/nope.dxf")
	require.Error(t, err)
	var re *ReadError
	assert.ErrorAs(t, err, &re)
}
