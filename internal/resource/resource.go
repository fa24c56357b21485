// Package resource loads binary resources embedded in PE modules or in an
// fs.FS, and extracts them to disk.
package resource

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/Norgate-AV/winutilz/internal/envpath"
)

var (
	// ErrNotFound is returned when a resource does not exist or is empty.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidID is returned by ParseID for malformed identifiers.
	ErrInvalidID = errors.New("invalid resource identifier")
)

// ID names a resource or resource type, either by string or by the 16-bit
// integer form produced by MAKEINTRESOURCE.
type ID struct {
	name  string
	num   uint16
	isInt bool
}

// Name returns a string identifier.
func Name(s string) ID { return ID{name: s} }

// Int returns an integer identifier.
func Int(n uint16) ID { return ID{num: n, isInt: true} }

// ParseID accepts "#101" or "101" as integers and anything else as a name.
func ParseID(s string) (ID, error) {
	if s == "" || s == "#" {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}

	digits := strings.TrimPrefix(s, "#")
	if n, err := strconv.ParseUint(digits, 10, 16); err == nil {
		if n == 0 {
			return ID{}, fmt.Errorf("%w: %q", ErrInvalidID, s)
		}

		return Int(uint16(n)), nil
	}

	if strings.HasPrefix(s, "#") {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}

	return Name(s), nil
}

// IsInt reports whether id is an integer identifier.
func (id ID) IsInt() bool { return id.isInt }

// Valid reports whether id is a non-zero integer or a non-empty name.
func (id ID) Valid() bool {
	if id.isInt {
		return id.num != 0
	}

	return id.name != ""
}

// Num returns the integer value, or 0 for named identifiers.
func (id ID) Num() uint16 { return id.num }

func (id ID) String() string {
	if id.IsInt() {
		return "#" + strconv.Itoa(int(id.num))
	}

	return id.name
}

// Well-known resource types.
var (
	Cursor      = Int(1)
	Bitmap      = Int(2)
	Icon        = Int(3)
	RCData      = Int(10)
	GroupCursor = Int(12)
	GroupIcon   = Int(14)
	AniCursor   = Int(21)
	AniIcon     = Int(22)
	HTML        = Int(23)
)

var typeNames = map[string]ID{
	"CURSOR":       Cursor,
	"BITMAP":       Bitmap,
	"ICON":         Icon,
	"RCDATA":       RCData,
	"GROUP_CURSOR": GroupCursor,
	"GROUP_ICON":   GroupIcon,
	"ANICURSOR":    AniCursor,
	"ANIICON":      AniIcon,
	"HTML":         HTML,
}

// ParseType accepts the RT_ names without prefix (RCDATA, ANICURSOR, ...)
// or anything ParseID accepts.
func ParseType(s string) (ID, error) {
	if id, ok := typeNames[strings.TrimPrefix(strings.ToUpper(s), "RT_")]; ok {
		return id, nil
	}

	return ParseID(s)
}

// Loader reads resources by name and type.
type Loader interface {
	Exists(name, typ ID) bool
	Load(name, typ ID) ([]byte, error)
}

// Extract writes the resource to path, creating or truncating the file.
// %VAR% references in path are expanded.
func Extract(l Loader, name, typ ID, dst string) error {
	data, err := l.Load(name, typ)
	if err != nil {
		return err
	}

	dst = envpath.Expand(dst)

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", dst, err)
	}

	n, err := f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		return fmt.Errorf("could not write %s: %w", dst, err)
	}

	if n != len(data) {
		return fmt.Errorf("short write to %s: %d of %d bytes", dst, n, len(data))
	}

	return nil
}

// FS loads resources from files laid out as <type>/<name>, for example
// "RCDATA/101" or "ANICURSOR/busy". Integer ids use their decimal value.
type FS struct {
	fsys fs.FS
}

// NewFS wraps fsys, typically an embed.FS.
func NewFS(fsys fs.FS) *FS {
	return &FS{fsys: fsys}
}

func fsPath(name, typ ID) (string, error) {
	part := func(id ID) string {
		if id.IsInt() {
			for n, v := range typeNames {
				if v == id {
					return n
				}
			}

			return strconv.Itoa(int(id.num))
		}

		return id.name
	}

	dir, file := part(typ), part(name)
	for _, p := range []string{dir, file} {
		if p == "" || p == "." || p == ".." || strings.ContainsAny(p, `/\`) {
			return "", fmt.Errorf("%w: %q", ErrInvalidID, p)
		}
	}

	return path.Join(dir, file), nil
}

func (l *FS) Exists(name, typ ID) bool {
	p, err := fsPath(name, typ)
	if err != nil {
		return false
	}

	info, err := fs.Stat(l.fsys, p)
	return err == nil && !info.IsDir() && info.Size() > 0
}

func (l *FS) Load(name, typ ID) ([]byte, error) {
	p, err := fsPath(name, typ)
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(l.fsys, p)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && len(data) == 0) {
		return nil, fmt.Errorf("%s/%s: %w", typ, name, ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}

	return data, nil
}
