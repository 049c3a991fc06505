// =============================================================================
// JSON to CSV Converter - Input Encodings
// =============================================================================
//
// Input files are decoded to UTF-8 before parsing.
//
// SUPPORTED ENCODINGS:
//   utf-8 (default), utf-16, utf-16le, utf-16be, iso-8859-1, windows-1252
//
// A byte order mark always wins over the configured encoding.
//
// =============================================================================

package document

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is the input encoding used when none is configured.
const DefaultEncoding = "utf-8"

// encodings maps the accepted configuration names to decoders. Every decoder
// honours a leading byte order mark.
var encodings = map[string]func() encoding.Encoding{
	"utf-8": func() encoding.Encoding {
		return unicode.UTF8BOM
	},
	"utf-16": func() encoding.Encoding {
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	},
	"utf-16le": func() encoding.Encoding {
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	},
	"utf-16be": func() encoding.Encoding {
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	},
	"iso-8859-1": func() encoding.Encoding {
		return charmap.ISO8859_1
	},
	"windows-1252": func() encoding.Encoding {
		return charmap.Windows1252
	},
}

// NormalizeEncoding lower-cases name and maps common aliases.
func NormalizeEncoding(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", "utf8":
		return DefaultEncoding
	case "latin1", "latin-1", "iso8859-1":
		return "iso-8859-1"
	case "cp1252":
		return "windows-1252"
	case "utf16":
		return "utf-16"
	}
	return name
}

// SupportedEncoding reports whether name can be passed to Transcode.
func SupportedEncoding(name string) bool {
	_, ok := encodings[NormalizeEncoding(name)]
	return ok
}

// Transcode converts data from the named encoding to UTF-8, dropping any byte
// order mark.
func Transcode(data []byte, name string) ([]byte, error) {
	newEnc, ok := encodings[NormalizeEncoding(name)]
	if !ok {
		return nil, fmt.Errorf("unsupported input encoding %q", name)
	}

	decoder := unicode.BOMOverride(newEnc().NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s input: %w", NormalizeEncoding(name), err)
	}
	return out, nil
}
