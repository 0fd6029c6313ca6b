// Package ops implements the model-to-model command operations this
// module exposes: dumping a tree to text/JSON/YAML, splitting a
// multi-IFD file into single-IFD files, concatenating several files'
// IFD chains into one, and editing fields in place.
package ops

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/DigitalSlideArchive/tifftools"
	"github.com/DigitalSlideArchive/tifftools/tagset"
)

// DumpFormat selects Dump's output encoding.
type DumpFormat int

const (
	FormatText DumpFormat = iota
	FormatJSON
	FormatYAML
)

// DumpOptions controls Dump's behavior.
type DumpOptions struct {
	Format DumpFormat
	// Max caps how many array elements of a field's value are
	// rendered before the rest are elided; 0 means unlimited.
	Max int
}

type dumpField struct {
	Tag     string            `json:"tag" yaml:"tag"`
	Name    string            `json:"name,omitempty" yaml:"name,omitempty"`
	Type    string            `json:"type" yaml:"type"`
	Count   uint64            `json:"count" yaml:"count"`
	Value   interface{}       `json:"value,omitempty" yaml:"value,omitempty"`
	Enum    []string          `json:"enum,omitempty" yaml:"enum,omitempty"`
	IFDs    [][]dumpField     `json:"ifds,omitempty" yaml:"ifds,omitempty"`
	GeoKeys []string          `json:"geokeys,omitempty" yaml:"geokeys,omitempty"`
	Vendor  map[string]string `json:"vendor,omitempty" yaml:"vendor,omitempty"`
}

type dumpDoc struct {
	BigTIFF  bool          `json:"bigtiff" yaml:"bigtiff"`
	IFDs     [][]dumpField `json:"ifds" yaml:"ifds"`
	Warnings []string      `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Dump renders info per opts.
func Dump(info *tifftools.Info, opts DumpOptions) (string, error) {
	doc := buildDumpDoc(info, opts, tagset.Global().Set("TIFF"))
	switch opts.Format {
	case FormatJSON:
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil
	case FormatYAML:
		b, err := yaml.Marshal(doc)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return renderDumpText(doc), nil
	}
}

func buildDumpDoc(info *tifftools.Info, opts DumpOptions, space *tagset.Set) dumpDoc {
	doc := dumpDoc{BigTIFF: info.BigTIFF}
	for _, ifd := range info.IFDs {
		doc.IFDs = append(doc.IFDs, buildDumpFields(ifd, opts, space))
	}
	for _, w := range info.Warnings {
		doc.Warnings = append(doc.Warnings, w.String())
	}
	return doc
}

func buildDumpFields(ifd *tifftools.IFD, opts DumpOptions, space *tagset.Set) []dumpField {
	fields := make([]dumpField, 0, len(ifd.Fields))
	for i := range ifd.Fields {
		f := &ifd.Fields[i]
		desc, known := tagset.Global().LookupID(space, tagset.TagID(f.Tag))
		df := dumpField{Tag: f.Tag.String(), Type: f.Type.Name(), Count: f.Count}
		if known {
			df.Name = desc.Name
		}
		if f.IsIFDBearing() {
			childSpace := tagset.Global().ChildSet(space, tagset.TagID(f.Tag))
			for _, child := range f.Children {
				df.IFDs = append(df.IFDs, buildDumpFields(child, opts, childSpace))
			}
			fields = append(fields, df)
			continue
		}
		df.Value = formatFieldValue(f, ifd.Order, opts.Max)
		if known && desc.Enum != nil {
			df.Enum = decodeEnumValues(f, ifd.Order, desc)
		}
		decorateVendorFields(&df, f, ifd.Order)
		fields = append(fields, df)
	}
	return fields
}

// imageDescriptionTag is 0x10E/270; Aperio and ImageJ both overload it
// to carry vendor metadata as delimited text instead of private tags.
const imageDescriptionTag = tifftools.Tag(0x10E)

// decorateVendorFields adds decoded GeoKeyDirectory and vendor
// ImageDescription content to df, when present, so they're reachable
// through a dump instead of only through their own decoders.
func decorateVendorFields(df *dumpField, f *tifftools.Field, order binary.ByteOrder) {
	switch {
	case f.Tag == tifftools.Tag(tagset.GeoKeyDirectoryTag) && f.Type == tifftools.TypeShort:
		shorts := make([]uint16, f.Count)
		for i := range shorts {
			shorts[i] = f.Short(uint64(i), order)
		}
		_, _, _, entries, err := tagset.DecodeGeoKeyDirectory(shorts)
		if err != nil {
			return
		}
		geoSpace := tagset.Global().Set("GeoTIFF")
		for _, e := range entries {
			name := fmt.Sprintf("%d", e.KeyID)
			if desc, ok := tagset.Global().LookupID(geoSpace, e.KeyID); ok {
				name = desc.Name
			}
			df.GeoKeys = append(df.GeoKeys, fmt.Sprintf("%s=%d", name, e.ValueOffset))
		}
	case f.Tag == imageDescriptionTag && f.Type.IsASCII():
		desc := f.ASCII()
		switch {
		case tagset.IsAperioDescription(desc):
			_, fields := tagset.ParseAperioDescription(desc)
			df.Vendor = fields
		case tagset.IsImageJDescription(desc):
			_, fields := tagset.ParseImageJDescription(desc)
			df.Vendor = fields
		}
	}
}

func decodeEnumValues(f *tifftools.Field, order binary.ByteOrder, desc *tagset.Descriptor) []string {
	if !f.Type.IsIntegral() {
		return nil
	}
	names := make([]string, 0, f.Count)
	for i := uint64(0); i < f.Count; i++ {
		v := uint64(f.AnyInteger(i, order))
		if name, ok := desc.EnumName(v); ok {
			names = append(names, name)
		} else {
			names = append(names, fmt.Sprintf("%d", v))
		}
	}
	return names
}

func formatFieldValue(f *tifftools.Field, order binary.ByteOrder, max int) interface{} {
	n := f.Count
	truncated := false
	if max > 0 && uint64(max) < n {
		n = uint64(max)
		truncated = true
	}
	var vals []interface{}
	switch {
	case f.Type.IsASCII():
		return f.ASCII()
	case f.Type.IsIntegral():
		for i := uint64(0); i < n; i++ {
			vals = append(vals, f.AnyInteger(i, order))
		}
	case f.Type.IsRational():
		for i := uint64(0); i < n; i++ {
			num, den := f.AnyRational(i, order)
			vals = append(vals, fmt.Sprintf("%d/%d", num, den))
		}
	case f.Type.IsFloat():
		for i := uint64(0); i < n; i++ {
			vals = append(vals, f.AnyFloat(i, order))
		}
	default:
		return fmt.Sprintf("<%d bytes>", len(f.Data))
	}
	if truncated {
		vals = append(vals, "...")
	}
	if len(vals) == 1 && !truncated {
		return vals[0]
	}
	return vals
}

func renderDumpText(doc dumpDoc) string {
	var b strings.Builder
	mode := "TIFF"
	if doc.BigTIFF {
		mode = "BigTIFF"
	}
	fmt.Fprintf(&b, "%s file, %d IFD(s)\n", mode, len(doc.IFDs))
	for i, fields := range doc.IFDs {
		fmt.Fprintf(&b, "IFD %d\n", i)
		renderDumpFieldsText(&b, fields, "  ")
	}
	if len(doc.Warnings) > 0 {
		fmt.Fprintln(&b, "Warnings:")
		for _, w := range doc.Warnings {
			fmt.Fprintf(&b, "  %s\n", w)
		}
	}
	return b.String()
}

func renderDumpFieldsText(b *strings.Builder, fields []dumpField, indent string) {
	sorted := append([]dumpField(nil), fields...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Tag < sorted[j].Tag })
	for _, f := range sorted {
		name := f.Name
		if name == "" {
			name = f.Tag
		}
		if len(f.IFDs) > 0 {
			fmt.Fprintf(b, "%s%s (%s): %d sub-IFD(s)\n", indent, name, f.Tag, len(f.IFDs))
			for _, sub := range f.IFDs {
				renderDumpFieldsText(b, sub, indent+"  ")
			}
			continue
		}
		if len(f.Enum) > 0 {
			fmt.Fprintf(b, "%s%s (%s) %s[%d]: %v\n", indent, name, f.Tag, f.Type, f.Count, f.Enum)
			continue
		}
		fmt.Fprintf(b, "%s%s (%s) %s[%d]: %v\n", indent, name, f.Tag, f.Type, f.Count, f.Value)
		if len(f.GeoKeys) > 0 {
			fmt.Fprintf(b, "%s  geokeys: %v\n", indent, f.GeoKeys)
		}
		if len(f.Vendor) > 0 {
			keys := make([]string, 0, len(f.Vendor))
			for k := range f.Vendor {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(b, "%s  %s: %s\n", indent, k, f.Vendor[k])
			}
		}
	}
}
