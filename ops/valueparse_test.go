package ops

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigitalSlideArchive/tifftools"
)

func TestResolveTagUsesRegistryDefaultType(t *testing.T) {
	tag, typ, err := resolveTag("ImageWidth", "")
	require.NoError(t, err)
	assert.Equal(t, tifftools.Tag(0x100), tag)
	assert.Equal(t, tifftools.TypeLong, typ)
}

func TestResolveTagHonorsExplicitTypeOverride(t *testing.T) {
	_, typ, err := resolveTag("ImageWidth", "short")
	require.NoError(t, err)
	assert.Equal(t, tifftools.TypeShort, typ)
}

func TestResolveTagNumericWithoutTypeFails(t *testing.T) {
	_, _, err := resolveTag("0x9999", "")
	require.Error(t, err)
	var terr *tifftools.Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, tifftools.KindUser, terr.Kind)
}

func TestResolveTagRejectsUnknownType(t *testing.T) {
	_, _, err := resolveTag("ImageWidth", "notatype")
	assert.Error(t, err)
}

func TestParseFieldValuesIntegral(t *testing.T) {
	f, err := parseFieldValues(tifftools.Tag(256), tifftools.TypeShort, binary.LittleEndian, []string{"640"})
	require.NoError(t, err)
	assert.Equal(t, uint16(640), f.Short(0, binary.LittleEndian))
}

func TestParseFieldValuesASCIIJoinsWithComma(t *testing.T) {
	f, err := parseFieldValues(tifftools.Tag(0x10E), tifftools.TypeASCII, binary.LittleEndian, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "a,b", f.ASCII())
}

func TestParseFieldValuesRational(t *testing.T) {
	f, err := parseFieldValues(tifftools.Tag(0x11A), tifftools.TypeRational, binary.LittleEndian, []string{"300/1"})
	require.NoError(t, err)
	n, d := f.Rational(0, binary.LittleEndian)
	assert.Equal(t, uint32(300), n)
	assert.Equal(t, uint32(1), d)
}

func TestParseFieldValuesRationalWithoutDenominatorDefaultsToOne(t *testing.T) {
	f, err := parseFieldValues(tifftools.Tag(0x11A), tifftools.TypeRational, binary.LittleEndian, []string{"72"})
	require.NoError(t, err)
	n, d := f.Rational(0, binary.LittleEndian)
	assert.Equal(t, uint32(72), n)
	assert.Equal(t, uint32(1), d)
}

func TestParseFieldValuesRejectsBadInteger(t *testing.T) {
	_, err := parseFieldValues(tifftools.Tag(256), tifftools.TypeShort, binary.LittleEndian, []string{"not-a-number"})
	require.Error(t, err)
	var terr *tifftools.Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, tifftools.KindUser, terr.Kind)
}

func TestParseFieldValuesFloat(t *testing.T) {
	f, err := parseFieldValues(tifftools.Tag(0x11A), tifftools.TypeDouble, binary.LittleEndian, []string{"3.25"})
	require.NoError(t, err)
	assert.InDelta(t, 3.25, f.Double(0, binary.LittleEndian), 0.0001)
}
