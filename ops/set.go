package ops

import (
	"strconv"
	"strings"

	"github.com/DigitalSlideArchive/tifftools"
)

// SetDirective is one parsed --set/--unset/--setfrom argument.
type SetDirective struct {
	IFDIndex int // which top-level IFD to edit; defaults to 0

	// Unset, if true, deletes Tag instead of assigning a value.
	Unset bool

	// Tag is the symbolic or numeric tag name to edit.
	Tag string
	// Type optionally overrides the tag's registry default datatype.
	Type string
	// Values holds the literal value tokens for a --set directive.
	Values []string

	// SetFrom, if non-nil, copies the field (including any nested
	// IFDs beneath it) from another already-parsed document instead of
	// parsing Values. Image data that a copied offset field points at
	// is not copied.
	SetFrom *SetFromSource
}

// SetFromSource names where --setfrom copies a field's value from.
type SetFromSource struct {
	Info     *tifftools.Info
	IFDIndex int
	Tag      string // defaults to the destination directive's Tag if empty
}

// ParseSetArg parses one "--set TAG[:DATATYPE][,IFD]=v1,v2" style
// argument body (the part after the flag) into a SetDirective.
func ParseSetArg(arg string) (SetDirective, error) {
	eq := strings.IndexByte(arg, '=')
	if eq < 0 {
		return SetDirective{}, tifftools.NewUserErrorf("--set value %q missing '='", arg)
	}
	key, vals := arg[:eq], arg[eq+1:]
	tag, typeName, ifdIndex, err := parseTagKey(key)
	if err != nil {
		return SetDirective{}, err
	}
	return SetDirective{IFDIndex: ifdIndex, Tag: tag, Type: typeName, Values: strings.Split(vals, ",")}, nil
}

// ParseUnsetArg parses a "--unset TAG[,IFD]" argument.
func ParseUnsetArg(arg string) (SetDirective, error) {
	tag, _, ifdIndex, err := parseTagKey(arg)
	if err != nil {
		return SetDirective{}, err
	}
	return SetDirective{Unset: true, IFDIndex: ifdIndex, Tag: tag}, nil
}

// parseTagKey splits a "TAG[:DATATYPE][,IFD]" key into its tag symbol,
// optional datatype override, and optional target IFD index (0 if the
// ",IFD" suffix is absent).
func parseTagKey(key string) (tag, typeName string, ifdIndex int, err error) {
	tag = key
	if comma := strings.IndexByte(key, ','); comma >= 0 {
		var perr error
		ifdIndex, perr = strconv.Atoi(key[comma+1:])
		if perr != nil {
			return "", "", 0, tifftools.NewUserErrorf("invalid IFD index %q: %v", key[comma+1:], perr)
		}
		tag = key[:comma]
	}
	if colon := strings.IndexByte(tag, ':'); colon >= 0 {
		tag, typeName = tag[:colon], tag[colon+1:]
	}
	return tag, typeName, ifdIndex, nil
}

// Apply mutates info in place according to directives, in order. Each
// directive targets IFDIndex (default 0); an out-of-range index is a
// KindUser error, matching the CLI's bad-input exit code.
func Apply(info *tifftools.Info, directives []SetDirective) error {
	for _, d := range directives {
		if d.IFDIndex < 0 || d.IFDIndex >= len(info.IFDs) {
			return tifftools.NewUserErrorf("IFD index %d out of range (file has %d)", d.IFDIndex, len(info.IFDs))
		}
		ifd := info.IFDs[d.IFDIndex]
		tag, typ, err := resolveTag(d.Tag, d.Type)
		if err != nil {
			return err
		}
		if d.Unset {
			ifd.Delete(tag)
			continue
		}
		if d.SetFrom != nil {
			if err := applySetFrom(ifd, tag, d.SetFrom); err != nil {
				return err
			}
			continue
		}
		f, err := parseFieldValues(tag, typ, ifd.Order, d.Values)
		if err != nil {
			return err
		}
		ifd.Put(f)
	}
	return nil
}

func applySetFrom(dst *tifftools.IFD, dstTag tifftools.Tag, src *SetFromSource) error {
	if src.IFDIndex < 0 || src.IFDIndex >= len(src.Info.IFDs) {
		return tifftools.NewUserErrorf("--setfrom IFD index %d out of range", src.IFDIndex)
	}
	srcIFD := src.Info.IFDs[src.IFDIndex]
	srcTagName := src.Tag
	var srcField *tifftools.Field
	if srcTagName == "" {
		srcField = srcIFD.Find(dstTag)
	} else {
		srcTag, _, err := resolveTag(srcTagName, "")
		if err != nil {
			return err
		}
		srcField = srcIFD.Find(srcTag)
	}
	if srcField == nil {
		return tifftools.NewUserErrorf("--setfrom source has no tag %s", dstTag)
	}
	f := reorderField(*srcField, srcIFD.Order, dst.Order)
	f.Tag = dstTag
	dst.Put(f)
	return nil
}
