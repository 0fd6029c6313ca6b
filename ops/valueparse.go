package ops

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/DigitalSlideArchive/tifftools"
	"github.com/DigitalSlideArchive/tifftools/tagset"
)

// typeByName maps the datatype names a --set/--setfrom directive can
// spell out explicitly (case-insensitive), overriding a tag's
// registry default. An unrecognized name is a KindUser error.
var typeByName = map[string]tifftools.Type{
	"byte": tifftools.TypeByte, "ascii": tifftools.TypeASCII, "short": tifftools.TypeShort,
	"long": tifftools.TypeLong, "rational": tifftools.TypeRational, "sbyte": tifftools.TypeSByte,
	"undefined": tifftools.TypeUndefined, "sshort": tifftools.TypeSShort, "slong": tifftools.TypeSLong,
	"srational": tifftools.TypeSRational, "float": tifftools.TypeFloat, "double": tifftools.TypeDouble,
	"long8": tifftools.TypeLong8, "slong8": tifftools.TypeSLong8,
}

// resolveTag resolves a symbolic or numeric tag name against the
// registry, returning the Tag and a best-guess datatype (overridden if
// typeName is non-empty).
func resolveTag(symbol, typeName string) (tifftools.Tag, tifftools.Type, error) {
	desc, err := tagset.Global().Lookup(tagset.Global().Set("TIFF"), symbol)
	if err != nil {
		return 0, 0, tifftools.NewUserErrorf("unknown tag %q: %v", symbol, err)
	}
	typ := tifftools.Type(desc.DefaultType)
	if typeName != "" {
		t, ok := typeByName[strings.ToLower(typeName)]
		if !ok {
			return 0, 0, tifftools.NewUserErrorf("unknown datatype %q", typeName)
		}
		typ = t
	}
	if typ == 0 {
		return 0, 0, tifftools.NewUserErrorf("tag %q has no default datatype; specify one explicitly", symbol)
	}
	return tifftools.Tag(desc.ID), typ, nil
}

// parseFieldValues builds a Field of datatype typ from literal tokens
// (already split on commas by the caller), resolving symbolic enum
// names (e.g. "JPEG" for Compression) against the tag's descriptor.
func parseFieldValues(tag tifftools.Tag, typ tifftools.Type, order binary.ByteOrder, tokens []string) (tifftools.Field, error) {
	f := tifftools.Field{Tag: tag, Type: typ}
	if typ.IsASCII() {
		f.PutASCII(strings.Join(tokens, ","))
		return f, nil
	}
	f.Count = uint64(len(tokens))
	f.Data = make([]byte, typ.Size()*f.Count)
	for i, tok := range tokens {
		if err := putParsedValue(&f, uint64(i), typ, order, tok); err != nil {
			return f, err
		}
	}
	return f, nil
}

func putParsedValue(f *tifftools.Field, i uint64, typ tifftools.Type, order binary.ByteOrder, tok string) error {
	tok = strings.TrimSpace(tok)
	switch {
	case typ.IsRational():
		n, d, err := parseRational(tok)
		if err != nil {
			return err
		}
		if typ == tifftools.TypeSRational {
			f.PutSRational(i, int32(n), int32(d), order)
		} else {
			f.PutRational(i, uint32(n), uint32(d), order)
		}
		return nil
	case typ.IsFloat():
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return tifftools.NewUserErrorf("invalid float value %q: %v", tok, err)
		}
		if typ == tifftools.TypeFloat {
			f.PutFloat(i, float32(v), order)
		} else {
			f.PutDouble(i, v, order)
		}
		return nil
	default:
		v, err := strconv.ParseInt(tok, 0, 64)
		if err != nil {
			if desc, ok := tagset.Global().LookupID(tagset.Global().Set("TIFF"), tagset.TagID(f.Tag)); ok {
				for val, name := range desc.Enum {
					if strings.EqualFold(name, tok) {
						v, err = int64(val), nil
						break
					}
				}
			}
		}
		if err != nil {
			return tifftools.NewUserErrorf("invalid integer value %q: %v", tok, err)
		}
		switch typ {
		case tifftools.TypeByte:
			f.PutByte(i, uint8(v))
		case tifftools.TypeSByte:
			f.PutSByte(i, int8(v))
		case tifftools.TypeShort:
			f.PutShort(i, uint16(v), order)
		case tifftools.TypeSShort:
			f.PutSShort(i, int16(v), order)
		case tifftools.TypeLong, tifftools.TypeIFD:
			f.PutLong(i, uint32(v), order)
		case tifftools.TypeSLong:
			f.PutSLong(i, int32(v), order)
		case tifftools.TypeLong8, tifftools.TypeIFD8:
			f.PutLong8(i, uint64(v), order)
		case tifftools.TypeSLong8:
			f.PutSLong8(i, v, order)
		default:
			return tifftools.NewUserErrorf("unsupported datatype for literal value: %s", typ.Name())
		}
		return nil
	}
}

func parseRational(tok string) (int64, int64, error) {
	parts := strings.SplitN(tok, "/", 2)
	n, err := strconv.ParseInt(parts[0], 0, 64)
	if err != nil {
		return 0, 0, tifftools.NewUserErrorf("invalid rational %q: %v", tok, err)
	}
	if len(parts) == 1 {
		return n, 1, nil
	}
	d, err := strconv.ParseInt(parts[1], 0, 64)
	if err != nil {
		return 0, 0, tifftools.NewUserErrorf("invalid rational %q: %v", tok, err)
	}
	return n, d, nil
}
