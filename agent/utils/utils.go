/*
Copyright 2023 AmidaWare Inc.

Licensed under the Tactical RMM License Version 1.0 (the “License”).
You may only use the Licensed Software in accordance with the License.
A copy of the License is available at:

https://license.tacticalrmm.com

*/

package utils

import (
	"bytes"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

func CaptureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	f()
	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

// Chomp removes exactly one trailing line terminator.
// \r\n is checked first so that a windows line ending is removed as a unit.
func Chomp(s string) string {
	for _, sep := range []string{"\r\n", "\n", "\r"} {
		if strings.HasSuffix(s, sep) {
			return s[:len(s)-len(sep)]
		}
	}
	return s
}

// DecodeOutput decodes raw process output as UTF-8.
// A leading byte order mark switches the decoder, which is how wmic output
// redirected on some windows versions arrives. Output without a BOM whose
// second byte is NUL is taken as UTF-16LE. Any other NUL byte is kept so the
// caller sees it instead of two digits silently running together.
func DecodeOutput(b []byte) string {
	var dec transform.Transformer
	if looksUTF16LE(b) {
		dec = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	} else {
		dec = unicode.BOMOverride(unicode.UTF8.NewDecoder())
	}

	out, _, err := transform.Bytes(dec, b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "\uFFFD")
	}
	return string(out)
}

func looksUTF16LE(b []byte) bool {
	return len(b) >= 2 && len(b)%2 == 0 && b[0] != 0 && b[1] == 0
}
