// Package naming implements the part-file naming convention shared by the
// split executor (which produces part files) and the upload grouper (which
// recognises them).
//
// A part file of "clip.mp4" with index 3 is named "clip (part 03).mp4". The
// index is 1-based and zero-padded to width 2; wider indexes are written in
// full ("clip (part 100).mp4").
package naming

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// partPattern matches "<base> (part <digits>)<.ext>". Whitespace between the
// base and the parenthesis is not part of the base.
var partPattern = regexp.MustCompile(`^(.*?)\s*\(part\s+(\d+)\)(\.[^.]+)$`)

// Part is a parsed part-file name.
type Part struct {
	Base  string
	Index int
	Ext   string
}

// PartName returns the file name of part index of a file with the given stem
// and extension (extension includes the leading dot).
func PartName(stem string, index int, ext string) string {
	return fmt.Sprintf("%s (part %02d)%s", stem, index, ext)
}

// PartPath returns the path of part index of source, in the same directory.
func PartPath(source string, index int) string {
	dir := filepath.Dir(source)
	name := filepath.Base(source)
	ext := filepath.Ext(name)
	return filepath.Join(dir, PartName(strings.TrimSuffix(name, ext), index, ext))
}

// ParsePart parses a base name against the part convention.
func ParsePart(name string) (Part, bool) {
	m := partPattern.FindStringSubmatch(name)
	if m == nil {
		return Part{}, false
	}
	idx, err := strconv.Atoi(m[2])
	if err != nil {
		// Only reachable for absurdly long digit runs.
		return Part{}, false
	}
	return Part{Base: m[1], Index: idx, Ext: m[3]}, true
}

// IsPart reports whether name follows the part convention.
func IsPart(name string) bool {
	_, ok := ParsePart(name)
	return ok
}

// Stem returns the base name of path without its extension.
func Stem(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
