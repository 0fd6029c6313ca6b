package tagset

// Numeric codes match tifftools.Type; duplicated here so this package
// has no import dependency on the root package.
const (
	dtByte      DataType = 1
	dtASCII     DataType = 2
	dtShort     DataType = 3
	dtLong      DataType = 4
	dtRational  DataType = 5
	dtSByte     DataType = 6
	dtUndefined DataType = 7
	dtSShort    DataType = 8
	dtSLong     DataType = 9
	dtSRational DataType = 10
	dtFloat     DataType = 11
	dtDouble    DataType = 12
	dtIFD       DataType = 13
	dtLong8     DataType = 16
	dtIFD8      DataType = 18
)

// Root TIFF tag IDs.
const (
	NewSubfileType              TagID = 0x0FE
	SubfileType                 TagID = 0x0FF
	ImageWidth                  TagID = 0x100
	ImageLength                 TagID = 0x101
	BitsPerSample               TagID = 0x102
	Compression                 TagID = 0x103
	PhotometricInterpretation   TagID = 0x106
	Threshholding                TagID = 0x107
	CellWidth                   TagID = 0x108
	CellLength                  TagID = 0x109
	FillOrder                   TagID = 0x10A
	DocumentName                TagID = 0x10D
	ImageDescription            TagID = 0x10E
	Make                        TagID = 0x10F
	Model                       TagID = 0x110
	StripOffsets                TagID = 0x111
	Orientation                 TagID = 0x112
	SamplesPerPixel             TagID = 0x115
	RowsPerStrip                TagID = 0x116
	StripByteCounts             TagID = 0x117
	MinSampleValue              TagID = 0x118
	MaxSampleValue              TagID = 0x119
	XResolution                 TagID = 0x11A
	YResolution                 TagID = 0x11B
	PlanarConfiguration         TagID = 0x11C
	PageName                    TagID = 0x11D
	XPosition                   TagID = 0x11E
	YPosition                   TagID = 0x11F
	FreeOffsets                 TagID = 0x120
	FreeByteCounts              TagID = 0x121
	GrayResponseUnit            TagID = 0x122
	GrayResponseCurve           TagID = 0x123
	ResolutionUnit              TagID = 0x128
	PageNumber                  TagID = 0x129
	TransferFunction            TagID = 0x12D
	Software                    TagID = 0x131
	DateTime                    TagID = 0x132
	Artist                      TagID = 0x13B
	HostComputer                TagID = 0x13C
	Predictor                   TagID = 0x13D
	WhitePoint                  TagID = 0x13E
	PrimaryChromaticities       TagID = 0x13F
	ColorMap                    TagID = 0x140
	HalftoneHints               TagID = 0x141
	TileWidth                   TagID = 0x142
	TileLength                  TagID = 0x143
	TileOffsets                 TagID = 0x144
	TileByteCounts               TagID = 0x145
	SubIFDs                     TagID = 0x14A
	InkSet                      TagID = 0x14C
	InkNames                    TagID = 0x14D
	NumberOfInks                TagID = 0x14E
	DotRange                    TagID = 0x150
	TargetPrinter               TagID = 0x151
	ExtraSamples                TagID = 0x152
	SampleFormat                TagID = 0x153
	SMinSampleValue             TagID = 0x154
	SMaxSampleValue             TagID = 0x155
	TransferRange               TagID = 0x156
	ClipPath                    TagID = 0x157
	Indexed                     TagID = 0x15A
	JPEGTables                  TagID = 0x15B
	JPEGProc                    TagID = 0x200
	JPEGInterchangeFormat       TagID = 0x201
	JPEGInterchangeFormatLength TagID = 0x202
	YCbCrCoefficients           TagID = 0x211
	YCbCrSubSampling            TagID = 0x212
	YCbCrPositioning            TagID = 0x213
	ReferenceBlackWhite         TagID = 0x214
	XMP                         TagID = 0x2BC
	ImageID                     TagID = 0x800
	Copyright                   TagID = 0x8298
	ModelPixelScaleTag          TagID = 0x830E
	ModelTiepointTag            TagID = 0x8482
	ModelTransformationTag      TagID = 0x85D8
	ExifIFD                     TagID = 0x8769
	ICCProfile                  TagID = 0x8773
	GeoKeyDirectoryTag          TagID = 0x87AF
	GeoDoubleParamsTag          TagID = 0x87B0
	GeoAsciiParamsTag           TagID = 0x87B1
	GPSIFD                      TagID = 0x8825
	ImageSourceData             TagID = 0x935C
)

func tiffSet() *Set {
	s := newSet("TIFF")

	compressionEnum := map[uint64]string{
		1: "Uncompressed", 2: "CCITT1D", 3: "Group3Fax", 4: "Group4Fax",
		5: "LZW", 6: "OldJPEG", 7: "JPEG", 8: "AdobeDeflate", 32773: "PackBits",
		32946: "Deflate",
	}
	photometricEnum := map[uint64]string{
		0: "WhiteIsZero", 1: "BlackIsZero", 2: "RGB", 3: "Palette",
		4: "Mask", 5: "CMYK", 6: "YCbCr", 8: "CIELab",
	}
	orientationEnum := map[uint64]string{
		1: "TopLeft", 2: "TopRight", 3: "BottomRight", 4: "BottomLeft",
		5: "LeftTop", 6: "RightTop", 7: "RightBottom", 8: "LeftBottom",
	}
	planarEnum := map[uint64]string{1: "Chunky", 2: "Planar"}
	resUnitEnum := map[uint64]string{1: "None", 2: "Inch", 3: "Centimeter"}
	predictorEnum := map[uint64]string{1: "None", 2: "HorizontalDifferencing", 3: "FloatingPoint"}
	fillOrderEnum := map[uint64]string{1: "MSB2LSB", 2: "LSB2MSB"}

	s.add(&Descriptor{ID: NewSubfileType, Name: "NewSubfileType", DefaultType: dtLong,
		Bitfields: []Bitfield{
			{Mask: 1, Shift: 0, Name: "ReducedResolution"},
			{Mask: 2, Shift: 1, Name: "Page"},
			{Mask: 4, Shift: 2, Name: "Mask"},
		}})
	s.add(&Descriptor{ID: SubfileType, Name: "SubfileType", DefaultType: dtShort,
		Enum: map[uint64]string{1: "FullResolution", 2: "ReducedResolution", 3: "Page"}})
	s.add(&Descriptor{ID: ImageWidth, Name: "ImageWidth", DefaultType: dtLong})
	s.add(&Descriptor{ID: ImageLength, Name: "ImageLength", DefaultType: dtLong})
	s.add(&Descriptor{ID: BitsPerSample, Name: "BitsPerSample", DefaultType: dtShort})
	s.add(&Descriptor{ID: Compression, Name: "Compression", DefaultType: dtShort, Enum: compressionEnum})
	s.add(&Descriptor{ID: PhotometricInterpretation, Name: "PhotometricInterpretation", AltNames: []string{"Photometric"}, DefaultType: dtShort, Enum: photometricEnum})
	s.add(&Descriptor{ID: Threshholding, Name: "Threshholding", DefaultType: dtShort})
	s.add(&Descriptor{ID: CellWidth, Name: "CellWidth", DefaultType: dtShort})
	s.add(&Descriptor{ID: CellLength, Name: "CellLength", DefaultType: dtShort})
	s.add(&Descriptor{ID: FillOrder, Name: "FillOrder", DefaultType: dtShort, Enum: fillOrderEnum})
	s.add(&Descriptor{ID: DocumentName, Name: "DocumentName", DefaultType: dtASCII})
	s.add(&Descriptor{ID: ImageDescription, Name: "ImageDescription", DefaultType: dtASCII})
	s.add(&Descriptor{ID: Make, Name: "Make", DefaultType: dtASCII})
	s.add(&Descriptor{ID: Model, Name: "Model", DefaultType: dtASCII})
	s.add(&Descriptor{ID: StripOffsets, Name: "StripOffsets", DefaultType: dtLong, ByteCountOf: StripByteCounts})
	s.add(&Descriptor{ID: Orientation, Name: "Orientation", DefaultType: dtShort, Enum: orientationEnum})
	s.add(&Descriptor{ID: SamplesPerPixel, Name: "SamplesPerPixel", DefaultType: dtShort})
	s.add(&Descriptor{ID: RowsPerStrip, Name: "RowsPerStrip", DefaultType: dtLong})
	s.add(&Descriptor{ID: StripByteCounts, Name: "StripByteCounts", DefaultType: dtLong})
	s.add(&Descriptor{ID: MinSampleValue, Name: "MinSampleValue", DefaultType: dtShort})
	s.add(&Descriptor{ID: MaxSampleValue, Name: "MaxSampleValue", DefaultType: dtShort})
	s.add(&Descriptor{ID: XResolution, Name: "XResolution", DefaultType: dtRational})
	s.add(&Descriptor{ID: YResolution, Name: "YResolution", DefaultType: dtRational})
	s.add(&Descriptor{ID: PlanarConfiguration, Name: "PlanarConfiguration", DefaultType: dtShort, Enum: planarEnum})
	s.add(&Descriptor{ID: PageName, Name: "PageName", DefaultType: dtASCII})
	s.add(&Descriptor{ID: XPosition, Name: "XPosition", DefaultType: dtRational})
	s.add(&Descriptor{ID: YPosition, Name: "YPosition", DefaultType: dtRational})
	s.add(&Descriptor{ID: FreeOffsets, Name: "FreeOffsets", DefaultType: dtLong, ByteCountOf: FreeByteCounts})
	s.add(&Descriptor{ID: FreeByteCounts, Name: "FreeByteCounts", DefaultType: dtLong})
	s.add(&Descriptor{ID: GrayResponseUnit, Name: "GrayResponseUnit", DefaultType: dtShort})
	s.add(&Descriptor{ID: GrayResponseCurve, Name: "GrayResponseCurve", DefaultType: dtShort})
	s.add(&Descriptor{ID: ResolutionUnit, Name: "ResolutionUnit", DefaultType: dtShort, Enum: resUnitEnum})
	s.add(&Descriptor{ID: PageNumber, Name: "PageNumber", DefaultType: dtShort})
	s.add(&Descriptor{ID: TransferFunction, Name: "TransferFunction", DefaultType: dtShort})
	s.add(&Descriptor{ID: Software, Name: "Software", DefaultType: dtASCII})
	s.add(&Descriptor{ID: DateTime, Name: "DateTime", DefaultType: dtASCII})
	s.add(&Descriptor{ID: Artist, Name: "Artist", DefaultType: dtASCII})
	s.add(&Descriptor{ID: HostComputer, Name: "HostComputer", DefaultType: dtASCII})
	s.add(&Descriptor{ID: Predictor, Name: "Predictor", DefaultType: dtShort, Enum: predictorEnum})
	s.add(&Descriptor{ID: WhitePoint, Name: "WhitePoint", DefaultType: dtRational})
	s.add(&Descriptor{ID: PrimaryChromaticities, Name: "PrimaryChromaticities", DefaultType: dtRational})
	s.add(&Descriptor{ID: ColorMap, Name: "ColorMap", DefaultType: dtShort})
	s.add(&Descriptor{ID: HalftoneHints, Name: "HalftoneHints", DefaultType: dtShort})
	s.add(&Descriptor{ID: TileWidth, Name: "TileWidth", DefaultType: dtLong})
	s.add(&Descriptor{ID: TileLength, Name: "TileLength", DefaultType: dtLong})
	s.add(&Descriptor{ID: TileOffsets, Name: "TileOffsets", DefaultType: dtLong, ByteCountOf: TileByteCounts})
	s.add(&Descriptor{ID: TileByteCounts, Name: "TileByteCounts", DefaultType: dtLong})
	s.add(&Descriptor{ID: SubIFDs, Name: "SubIFDs", DefaultType: dtIFD, IsIFD: true})
	s.add(&Descriptor{ID: InkSet, Name: "InkSet", DefaultType: dtShort})
	s.add(&Descriptor{ID: InkNames, Name: "InkNames", DefaultType: dtASCII})
	s.add(&Descriptor{ID: NumberOfInks, Name: "NumberOfInks", DefaultType: dtShort})
	s.add(&Descriptor{ID: DotRange, Name: "DotRange", DefaultType: dtByte})
	s.add(&Descriptor{ID: TargetPrinter, Name: "TargetPrinter", DefaultType: dtASCII})
	s.add(&Descriptor{ID: ExtraSamples, Name: "ExtraSamples", DefaultType: dtShort,
		Enum: map[uint64]string{0: "Unspecified", 1: "AssociatedAlpha", 2: "UnassociatedAlpha"}})
	s.add(&Descriptor{ID: SampleFormat, Name: "SampleFormat", DefaultType: dtShort,
		Enum: map[uint64]string{1: "UnsignedInteger", 2: "SignedInteger", 3: "Float", 4: "Undefined"}})
	s.add(&Descriptor{ID: SMinSampleValue, Name: "SMinSampleValue", DefaultType: dtDouble})
	s.add(&Descriptor{ID: SMaxSampleValue, Name: "SMaxSampleValue", DefaultType: dtDouble})
	s.add(&Descriptor{ID: TransferRange, Name: "TransferRange", DefaultType: dtShort})
	s.add(&Descriptor{ID: ClipPath, Name: "ClipPath", DefaultType: dtByte})
	s.add(&Descriptor{ID: Indexed, Name: "Indexed", DefaultType: dtShort})
	s.add(&Descriptor{ID: JPEGTables, Name: "JPEGTables", DefaultType: dtUndefined})
	s.add(&Descriptor{ID: JPEGProc, Name: "JPEGProc", DefaultType: dtShort})
	s.add(&Descriptor{ID: JPEGInterchangeFormat, Name: "JPEGInterchangeFormat", DefaultType: dtLong, ByteCountOf: JPEGInterchangeFormatLength})
	s.add(&Descriptor{ID: JPEGInterchangeFormatLength, Name: "JPEGInterchangeFormatLength", DefaultType: dtLong})
	s.add(&Descriptor{ID: YCbCrCoefficients, Name: "YCbCrCoefficients", DefaultType: dtRational})
	s.add(&Descriptor{ID: YCbCrSubSampling, Name: "YCbCrSubSampling", DefaultType: dtShort})
	s.add(&Descriptor{ID: YCbCrPositioning, Name: "YCbCrPositioning", DefaultType: dtShort,
		Enum: map[uint64]string{1: "Centered", 2: "Cosited"}})
	s.add(&Descriptor{ID: ReferenceBlackWhite, Name: "ReferenceBlackWhite", DefaultType: dtRational})
	s.add(&Descriptor{ID: XMP, Name: "XMP", DefaultType: dtByte})
	s.add(&Descriptor{ID: ImageID, Name: "ImageID", DefaultType: dtASCII})
	s.add(&Descriptor{ID: Copyright, Name: "Copyright", DefaultType: dtASCII})
	s.add(&Descriptor{ID: ModelPixelScaleTag, Name: "ModelPixelScaleTag", DefaultType: dtDouble})
	s.add(&Descriptor{ID: ModelTiepointTag, Name: "ModelTiepointTag", DefaultType: dtDouble})
	s.add(&Descriptor{ID: ModelTransformationTag, Name: "ModelTransformationTag", DefaultType: dtDouble})
	s.add(&Descriptor{ID: ExifIFD, Name: "ExifIFD", DefaultType: dtLong, IsIFD: true})
	s.add(&Descriptor{ID: ICCProfile, Name: "ICCProfile", DefaultType: dtUndefined})
	s.add(&Descriptor{ID: GeoKeyDirectoryTag, Name: "GeoKeyDirectoryTag", DefaultType: dtShort})
	s.add(&Descriptor{ID: GeoDoubleParamsTag, Name: "GeoDoubleParamsTag", DefaultType: dtDouble})
	s.add(&Descriptor{ID: GeoAsciiParamsTag, Name: "GeoAsciiParamsTag", DefaultType: dtASCII})
	s.add(&Descriptor{ID: GPSIFD, Name: "GPSIFD", DefaultType: dtLong, IsIFD: true})
	s.add(&Descriptor{ID: ImageSourceData, Name: "ImageSourceData", DefaultType: dtUndefined})
	return s
}
