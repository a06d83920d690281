package dxf

import (
	"bufio"
	"bytes"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// sniffBytes is how far into the file the codepage declaration is looked
// for. $DWGCODEPAGE sits in the HEADER section, well inside this window.
const sniffBytes = 8192

// DecodeReader returns a reader that yields UTF-8 regardless of the
// file's legacy codepage. Hebrew drawings commonly declare ANSI_1255
// (Windows-1255) or ship ISO-8859-8; both are transcoded. Files that are
// already valid UTF-8 pass through untouched.
func DecodeReader(r io.Reader) io.Reader {
	br := bufio.NewReaderSize(r, sniffBytes)
	head, _ := br.Peek(sniffBytes)

	upper := bytes.ToUpper(head)
	switch {
	case bytes.Contains(upper, []byte("ANSI_1255")):
		return charmap.Windows1255.NewDecoder().Reader(br)
	case bytes.Contains(upper, []byte("ISO-8859-8")), bytes.Contains(upper, []byte("8859_8")):
		return charmap.ISO8859_8.NewDecoder().Reader(br)
	}

	// No declaration. If the head is not valid UTF-8, assume Windows-1255
	// rather than passing mojibake downstream.
	if !validUTF8Prefix(head) {
		return charmap.Windows1255.NewDecoder().Reader(br)
	}
	return br
}

// validUTF8Prefix checks UTF-8 validity ignoring a possibly truncated
// rune at the end of the window.
func validUTF8Prefix(b []byte) bool {
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			// A truncated rune at the very end of the window is expected;
			// a bad byte mid-stream is not.
			return len(b) < utf8.UTFMax
		}
		b = b[size:]
	}
	return true
}
