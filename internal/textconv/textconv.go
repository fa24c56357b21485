// Package textconv converts between Windows ANSI code pages and Unicode.
package textconv

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf16"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

var (
	// ErrBufferTooSmall is returned when a converted string plus its NUL
	// terminator does not fit the destination buffer.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrUnmappable is returned when a character has no representation in
	// the target code page.
	ErrUnmappable = errors.New("character not representable in code page")

	// ErrUnsupportedCodePage is returned for code pages without a codec.
	ErrUnsupportedCodePage = errors.New("unsupported code page")
)

// CP_UTF8 is the UTF-8 code page identifier.
const CP_UTF8 = 65001

var codePages = map[uint32]encoding.Encoding{
	437:   charmap.CodePage437,
	850:   charmap.CodePage850,
	852:   charmap.CodePage852,
	855:   charmap.CodePage855,
	858:   charmap.CodePage858,
	860:   charmap.CodePage860,
	862:   charmap.CodePage862,
	863:   charmap.CodePage863,
	865:   charmap.CodePage865,
	866:   charmap.CodePage866,
	874:   charmap.Windows874,
	932:   japanese.ShiftJIS,
	936:   simplifiedchinese.GBK,
	949:   korean.EUCKR,
	950:   traditionalchinese.Big5,
	1250:  charmap.Windows1250,
	1251:  charmap.Windows1251,
	1252:  charmap.Windows1252,
	1253:  charmap.Windows1253,
	1254:  charmap.Windows1254,
	1255:  charmap.Windows1255,
	1256:  charmap.Windows1256,
	1257:  charmap.Windows1257,
	1258:  charmap.Windows1258,
	10000: charmap.Macintosh,
	20866: charmap.KOI8R,
	21866: charmap.KOI8U,
	28591: charmap.ISO8859_1,
	28592: charmap.ISO8859_2,
	28595: charmap.ISO8859_5,
	28597: charmap.ISO8859_7,
	28605: charmap.ISO8859_15,
	54936: simplifiedchinese.GB18030,
	65001: unicode.UTF8,
}

// Codec converts text for one code page.
type Codec struct {
	codePage uint32
	enc      encoding.Encoding
}

// CodecForCodePage returns the codec for a Windows code page identifier.
func CodecForCodePage(cp uint32) (*Codec, error) {
	enc, ok := codePages[cp]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedCodePage, cp)
	}

	return &Codec{codePage: cp, enc: enc}, nil
}

// SystemCodec returns the codec for the active ANSI code page, or
// windows-1252 when that code page is unknown or unavailable.
func SystemCodec() *Codec {
	if c, err := CodecForCodePage(systemCodePage()); err == nil {
		return c
	}

	return &Codec{codePage: 1252, enc: charmap.Windows1252}
}

// CodePage returns the Windows code page identifier.
func (c *Codec) CodePage() uint32 {
	return c.codePage
}

// ToWide decodes ANSI bytes, stopping at the first NUL.
func (c *Codec) ToWide(ansi []byte) (string, error) {
	if i := bytes.IndexByte(ansi, 0); i >= 0 {
		ansi = ansi[:i]
	}

	out, err := c.enc.NewDecoder().Bytes(ansi)
	if err != nil {
		return "", fmt.Errorf("decode code page %d: %w", c.codePage, err)
	}

	return string(out), nil
}

// ToANSI encodes s. Characters the code page cannot represent fail with
// ErrUnmappable instead of being replaced.
func (c *Codec) ToANSI(s string) ([]byte, error) {
	out, err := c.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: code page %d: %v", ErrUnmappable, c.codePage, err)
	}

	return out, nil
}

// ToWideBuffer decodes ansi into dst as NUL-terminated UTF-16 and returns the
// number of code units written, not counting the terminator.
func (c *Codec) ToWideBuffer(ansi []byte, dst []uint16) (int, error) {
	s, err := c.ToWide(ansi)
	if err != nil {
		return 0, err
	}

	units := utf16.Encode([]rune(s))
	if len(units)+1 > len(dst) {
		return 0, fmt.Errorf("%w: need %d, have %d", ErrBufferTooSmall, len(units)+1, len(dst))
	}

	copy(dst, units)
	dst[len(units)] = 0

	return len(units), nil
}

// ToANSIBuffer encodes s into dst as a NUL-terminated ANSI string and returns
// the number of bytes written, not counting the terminator.
func (c *Codec) ToANSIBuffer(s string, dst []byte) (int, error) {
	out, err := c.ToANSI(s)
	if err != nil {
		return 0, err
	}

	if len(out)+1 > len(dst) {
		return 0, fmt.Errorf("%w: need %d, have %d", ErrBufferTooSmall, len(out)+1, len(dst))
	}

	copy(dst, out)
	dst[len(out)] = 0

	return len(out), nil
}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// EncodeUTF16LE returns s as NUL-terminated little-endian UTF-16 bytes,
// the layout of CF_UNICODETEXT and wide registry strings.
func EncodeUTF16LE(s string) ([]byte, error) {
	out, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode UTF-16: %w", err)
	}

	return append(out, 0, 0), nil
}

// DecodeUTF16LE decodes little-endian UTF-16 bytes up to the first NUL unit.
// A trailing odd byte is ignored.
func DecodeUTF16LE(b []byte) (string, error) {
	b = b[:len(b)&^1]

	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			b = b[:i]
			break
		}
	}

	out, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode UTF-16: %w", err)
	}

	return string(out), nil
}
