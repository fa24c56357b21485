package syscolors

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/Norgate-AV/winutilz/internal/colorref"
)

// ThemeSection is the INI section of a .theme file that holds colors.
const ThemeSection = `Control Panel\Colors`

// ParseThemeColors reads the color section of a .theme file. UTF-8 and
// BOM-marked UTF-16 files are accepted. Unknown names and malformed values
// are skipped.
func ParseThemeColors(r io.Reader) (map[Element]colorref.ColorRef, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	scanner := bufio.NewScanner(decoded)

	out := make(map[Element]colorref.ColorRef)
	inSection := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			inSection = strings.EqualFold(strings.TrimSpace(line[1:len(line)-1]), ThemeSection)
			continue
		}

		if !inSection {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		el, err := ElementByName(strings.TrimSpace(key))
		if err != nil {
			continue
		}

		c, err := colorref.Parse(value)
		if err != nil {
			continue
		}

		out[el] = c
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
