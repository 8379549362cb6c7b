// Package grouper sorts upload candidates into part groups and standalone
// files.
//
// Files named "<base> (part NN)<ext>" are bucketed by base and ordered by
// part index so an album arrives in playback order. Everything else is a
// standalone unit.
package grouper

import (
	"sort"

	"jtools/models"
	"jtools/naming"
)

// UploadGroup is the set of parts of one split source, ordered by part index.
type UploadGroup struct {
	Base  string
	Files []models.MediaFile
}

// Result is the output of Group.
type Result struct {
	// Groups are sorted by base name.
	Groups []UploadGroup

	// Standalone keeps the input order.
	Standalone []models.MediaFile
}

// Lookup returns the group for base.
func (r Result) Lookup(base string) (UploadGroup, bool) {
	for _, g := range r.Groups {
		if g.Base == base {
			return g, true
		}
	}
	return UploadGroup{}, false
}

// Group classifies files. Within a group the order is by ascending part
// index; files sharing an index keep their input order.
func Group(files []models.MediaFile) Result {
	type indexed struct {
		file  models.MediaFile
		index int
	}

	buckets := make(map[string][]indexed)
	var bases []string
	var res Result

	for _, f := range files {
		p, ok := naming.ParsePart(f.Name())
		if !ok {
			res.Standalone = append(res.Standalone, f)
			continue
		}
		if _, seen := buckets[p.Base]; !seen {
			bases = append(bases, p.Base)
		}
		buckets[p.Base] = append(buckets[p.Base], indexed{file: f, index: p.Index})
	}

	sort.Strings(bases)
	for _, base := range bases {
		parts := buckets[base]
		sort.SliceStable(parts, func(i, j int) bool { return parts[i].index < parts[j].index })

		g := UploadGroup{Base: base, Files: make([]models.MediaFile, len(parts))}
		for i, p := range parts {
			g.Files[i] = p.file
		}
		res.Groups = append(res.Groups, g)
	}
	return res
}
