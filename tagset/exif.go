package tagset

// Exif 2.3 tag IDs (a representative subset: every tag this package's
// reader/writer/dump path needs to recognize by name; unknown Exif
// tags still round-trip, they're just printed numerically).
const (
	ExifVersion            TagID = 0x9000
	ExposureTime           TagID = 0x829A
	FNumber                TagID = 0x829D
	ExposureProgram        TagID = 0x8822
	ISOSpeedRatings        TagID = 0x8827
	DateTimeOriginal       TagID = 0x9003
	DateTimeDigitized      TagID = 0x9004
	ShutterSpeedValue      TagID = 0x9201
	ApertureValue          TagID = 0x9202
	MeteringMode           TagID = 0x9207
	Flash                  TagID = 0x9209
	FocalLength            TagID = 0x920A
	SubjectLocation        TagID = 0xA214
	FlashpixVersion        TagID = 0xA000
	ColorSpace             TagID = 0xA001
	PixelXDimension        TagID = 0xA002
	PixelYDimension        TagID = 0xA003
	InteropIFD             TagID = 0xA005
	FocalPlaneXResolution  TagID = 0xA20E
	FocalPlaneYResolution  TagID = 0xA20F
	FocalPlaneResUnit      TagID = 0xA210
	CustomRendered         TagID = 0xA401
	ExposureMode           TagID = 0xA402
	WhiteBalance           TagID = 0xA403
	LensMake               TagID = 0xA433
	LensModel              TagID = 0xA434
	MakerNote              TagID = 0x927C
)

func exifSet() *Set {
	s := newSet("Exif")
	s.add(&Descriptor{ID: ExifVersion, Name: "ExifVersion", DefaultType: dtUndefined})
	s.add(&Descriptor{ID: ExposureTime, Name: "ExposureTime", DefaultType: dtRational})
	s.add(&Descriptor{ID: FNumber, Name: "FNumber", DefaultType: dtRational})
	s.add(&Descriptor{ID: ExposureProgram, Name: "ExposureProgram", DefaultType: dtShort,
		Enum: map[uint64]string{
			0: "NotDefined", 1: "Manual", 2: "NormalProgram", 3: "AperturePriority",
			4: "ShutterPriority", 5: "CreativeProgram", 6: "ActionProgram",
			7: "PortraitMode", 8: "LandscapeMode",
		}})
	s.add(&Descriptor{ID: ISOSpeedRatings, Name: "ISOSpeedRatings", AltNames: []string{"ISO"}, DefaultType: dtShort})
	s.add(&Descriptor{ID: DateTimeOriginal, Name: "DateTimeOriginal", DefaultType: dtASCII})
	s.add(&Descriptor{ID: DateTimeDigitized, Name: "DateTimeDigitized", DefaultType: dtASCII})
	s.add(&Descriptor{ID: ShutterSpeedValue, Name: "ShutterSpeedValue", DefaultType: dtSRational})
	s.add(&Descriptor{ID: ApertureValue, Name: "ApertureValue", DefaultType: dtRational})
	s.add(&Descriptor{ID: MeteringMode, Name: "MeteringMode", DefaultType: dtShort,
		Enum: map[uint64]string{
			0: "Unknown", 1: "Average", 2: "CenterWeightedAverage", 3: "Spot",
			4: "MultiSpot", 5: "Pattern", 6: "Partial", 255: "Other",
		}})
	s.add(&Descriptor{ID: Flash, Name: "Flash", DefaultType: dtShort,
		Bitfields: []Bitfield{
			{Mask: 0x1, Shift: 0, Name: "Fired"},
			{Mask: 0x6, Shift: 1, Name: "ReturnLight"},
			{Mask: 0x18, Shift: 3, Name: "Mode"},
			{Mask: 0x20, Shift: 5, Name: "FunctionPresent"},
			{Mask: 0x40, Shift: 6, Name: "RedEyeMode"},
		}})
	s.add(&Descriptor{ID: FocalLength, Name: "FocalLength", DefaultType: dtRational})
	s.add(&Descriptor{ID: SubjectLocation, Name: "SubjectLocation", DefaultType: dtShort})
	s.add(&Descriptor{ID: FlashpixVersion, Name: "FlashpixVersion", DefaultType: dtUndefined})
	s.add(&Descriptor{ID: ColorSpace, Name: "ColorSpace", DefaultType: dtShort,
		Enum: map[uint64]string{1: "sRGB", 0xFFFF: "Uncalibrated"}})
	s.add(&Descriptor{ID: PixelXDimension, Name: "PixelXDimension", DefaultType: dtLong})
	s.add(&Descriptor{ID: PixelYDimension, Name: "PixelYDimension", DefaultType: dtLong})
	s.add(&Descriptor{ID: InteropIFD, Name: "InteropIFD", DefaultType: dtLong, IsIFD: true})
	s.add(&Descriptor{ID: FocalPlaneXResolution, Name: "FocalPlaneXResolution", DefaultType: dtRational})
	s.add(&Descriptor{ID: FocalPlaneYResolution, Name: "FocalPlaneYResolution", DefaultType: dtRational})
	s.add(&Descriptor{ID: FocalPlaneResUnit, Name: "FocalPlaneResolutionUnit", DefaultType: dtShort})
	s.add(&Descriptor{ID: CustomRendered, Name: "CustomRendered", DefaultType: dtShort})
	s.add(&Descriptor{ID: ExposureMode, Name: "ExposureMode", DefaultType: dtShort,
		Enum: map[uint64]string{0: "Auto", 1: "Manual", 2: "AutoBracket"}})
	s.add(&Descriptor{ID: WhiteBalance, Name: "WhiteBalance", DefaultType: dtShort,
		Enum: map[uint64]string{0: "Auto", 1: "Manual"}})
	s.add(&Descriptor{ID: LensMake, Name: "LensMake", DefaultType: dtASCII})
	s.add(&Descriptor{ID: LensModel, Name: "LensModel", DefaultType: dtASCII})
	s.add(&Descriptor{ID: MakerNote, Name: "MakerNote", DefaultType: dtUndefined, Signature: true})
	return s
}
