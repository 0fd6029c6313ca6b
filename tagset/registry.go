// Package tagset is the TIFF constants registry: a read-only,
// process-wide mapping from (tag-set, tag ID) and (tag-set, symbolic
// name) to tag metadata — default datatype, enum/bitfield vocabulary,
// whether the tag is IFD-bearing, and offset/bytecount pairing.
//
// It's deliberately independent of the root tifftools package (which
// imports it, not the other way around), so TagID here is a plain
// uint16 rather than the root package's Tag.
package tagset

import (
	"fmt"
	"strconv"
	"strings"
)

// TagID is a 16-bit TIFF/Exif/GPS/... tag number.
type TagID uint16

// DataType mirrors tifftools.Type's numeric codes without importing
// it, so the registry has no dependency on the model package.
type DataType uint16

// Bitfield describes one multi-bit subfield of an integer tag (e.g.
// NewSubfileType's "reduced-resolution" / "page" / "mask" bits).
type Bitfield struct {
	Mask   uint64
	Shift  uint
	Name   string
	Values map[uint64]string // decoded subfield value -> name, optional
}

// Descriptor is everything the registry knows about one tag.
type Descriptor struct {
	Set         string
	ID          TagID
	Name        string
	AltNames    []string
	DefaultType DataType
	Enum        map[uint64]string
	Bitfields   []Bitfield
	IsIFD       bool
	ByteCountOf TagID // paired bytecount tag, for an offset tag; 0 if none
	Lossy       bool
	Signature   bool
}

// EnumName resolves a field value to its symbolic enum name, if the
// descriptor declares one.
func (d *Descriptor) EnumName(val uint64) (string, bool) {
	name, ok := d.Enum[val]
	return name, ok
}

// DecodeBitfield returns the names of every bit (or multi-bit
// subfield) set in val. A subfield without a Values entry for its
// value is rendered as "Name=value", e.g. NewSubfileType=3 ->
// ["ReducedResolution=1", "Page=1"].
func (d *Descriptor) DecodeBitfield(val uint64) []string {
	var names []string
	for _, bf := range d.Bitfields {
		sub := (val & bf.Mask) >> bf.Shift
		if sub == 0 {
			continue
		}
		if bf.Values != nil {
			if name, ok := bf.Values[sub]; ok {
				names = append(names, name)
				continue
			}
		}
		names = append(names, fmt.Sprintf("%s=%d", bf.Name, sub))
	}
	return names
}

// Set is a named collection of tag descriptors, indexed by both
// numeric ID and lower-cased symbolic name/alt-name.
type Set struct {
	Name   string
	byID   map[TagID]*Descriptor
	byName map[string]*Descriptor
}

func newSet(name string) *Set {
	return &Set{Name: name, byID: map[TagID]*Descriptor{}, byName: map[string]*Descriptor{}}
}

func (s *Set) add(d *Descriptor) *Descriptor {
	d.Set = s.Name
	s.byID[d.ID] = d
	s.byName[strings.ToLower(d.Name)] = d
	for _, alt := range d.AltNames {
		s.byName[strings.ToLower(alt)] = d
	}
	return d
}

// ByID looks up a descriptor by numeric tag ID within this set only.
func (s *Set) ByID(id TagID) (*Descriptor, bool) {
	d, ok := s.byID[id]
	return d, ok
}

// ByName looks up a descriptor by symbolic name (case-insensitive)
// within this set only.
func (s *Set) ByName(name string) (*Descriptor, bool) {
	d, ok := s.byName[strings.ToLower(name)]
	return d, ok
}

// All returns every descriptor in the set, unordered.
func (s *Set) All() []*Descriptor {
	out := make([]*Descriptor, 0, len(s.byID))
	for _, d := range s.byID {
		out = append(out, d)
	}
	return out
}

// Registry composes every named tag-set the package knows about
// (TIFF, Exif, GPS, Interop, GeoTIFF GeoKeys, and vendor sets) and
// resolves symbols against a preferred set first, then an ordered
// fallback list.
type Registry struct {
	sets     map[string]*Set
	fallback []string // search order when no set is specified
}

// global is the process-wide registry, built once at init time from
// the static tables in tiff.go/exif.go/gps.go/interop.go/geotiff.go/
// vendor.go.
var global = buildRegistry()

// Global returns the process-wide, read-only registry.
func Global() *Registry { return global }

func buildRegistry() *Registry {
	r := &Registry{sets: map[string]*Set{}}
	r.register(tiffSet())
	r.register(exifSet())
	r.register(gpsSet())
	r.register(interopSet())
	r.register(geoKeySet())
	r.register(ndpiSet())
	r.fallback = []string{"TIFF", "Exif", "GPS", "Interop", "GeoTIFF", "NDPI"}
	return r
}

func (r *Registry) register(s *Set) {
	r.sets[s.Name] = s
}

// Set returns a named tag-set, or nil if unknown.
func (r *Registry) Set(name string) *Set {
	return r.sets[name]
}

// Lookup resolves a symbolic tag name against preferredSet (may be
// nil), then the registry's fallback search order, then finally as a
// raw "0xXXXX" or decimal numeric literal (returned synthesized with
// DefaultType 0, meaning "caller must supply a datatype").
func (r *Registry) Lookup(preferredSet *Set, symbol string) (*Descriptor, error) {
	if preferredSet != nil {
		if d, ok := preferredSet.ByName(symbol); ok {
			return d, nil
		}
	}
	for _, name := range r.fallback {
		set := r.sets[name]
		if set == nil || set == preferredSet {
			continue
		}
		if d, ok := set.ByName(symbol); ok {
			return d, nil
		}
	}
	id, err := parseNumericTag(symbol)
	if err != nil {
		return nil, fmt.Errorf("unknown tag %q", symbol)
	}
	return &Descriptor{Set: "Unknown", ID: id, Name: symbol}, nil
}

// LookupID resolves a tag by numeric ID in a given set (defaulting to
// TIFF if set is nil), falling back across the registry.
func (r *Registry) LookupID(preferredSet *Set, id TagID) (*Descriptor, bool) {
	if preferredSet != nil {
		if d, ok := preferredSet.ByID(id); ok {
			return d, true
		}
	}
	for _, name := range r.fallback {
		set := r.sets[name]
		if set == nil || set == preferredSet {
			continue
		}
		if d, ok := set.ByID(id); ok {
			return d, true
		}
	}
	return nil, false
}

// ChildSet resolves the tag-set a nested IFD should be parsed or
// displayed with, given the set its referencing tag lives in and that
// tag's ID: ExifIFD/GPSIFD open the Exif/GPS sets, Exif's InteropIFD
// opens Interop; anything else, including SubIFDs, stays in the
// parent's own set.
func (r *Registry) ChildSet(parent *Set, tag TagID) *Set {
	if parent != nil && parent.Name == "TIFF" {
		switch tag {
		case ExifIFD:
			return r.Set("Exif")
		case GPSIFD:
			return r.Set("GPS")
		}
	}
	if parent != nil && parent.Name == "Exif" && tag == InteropIFD {
		return r.Set("Interop")
	}
	return parent
}

func parseNumericTag(symbol string) (TagID, error) {
	s := strings.TrimSpace(symbol)
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	v, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0, err
	}
	return TagID(v), nil
}
