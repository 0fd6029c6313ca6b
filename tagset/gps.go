package tagset

// GPS IFD tag IDs (Exif 2.3 Annex).
const (
	GPSVersionID       TagID = 0x0000
	GPSLatitudeRef     TagID = 0x0001
	GPSLatitude        TagID = 0x0002
	GPSLongitudeRef    TagID = 0x0003
	GPSLongitude       TagID = 0x0004
	GPSAltitudeRef     TagID = 0x0005
	GPSAltitude        TagID = 0x0006
	GPSTimeStamp       TagID = 0x0007
	GPSSatellites      TagID = 0x0008
	GPSStatus          TagID = 0x0009
	GPSMeasureMode     TagID = 0x000A
	GPSDOP             TagID = 0x000B
	GPSSpeedRef        TagID = 0x000C
	GPSSpeed           TagID = 0x000D
	GPSMapDatum        TagID = 0x0012
	GPSDateStamp       TagID = 0x001D
)

func gpsSet() *Set {
	s := newSet("GPS")
	s.add(&Descriptor{ID: GPSVersionID, Name: "GPSVersionID", DefaultType: dtByte})
	s.add(&Descriptor{ID: GPSLatitudeRef, Name: "GPSLatitudeRef", DefaultType: dtASCII,
		Enum: map[uint64]string{'N': "North", 'S': "South"}})
	s.add(&Descriptor{ID: GPSLatitude, Name: "GPSLatitude", DefaultType: dtRational})
	s.add(&Descriptor{ID: GPSLongitudeRef, Name: "GPSLongitudeRef", DefaultType: dtASCII,
		Enum: map[uint64]string{'E': "East", 'W': "West"}})
	s.add(&Descriptor{ID: GPSLongitude, Name: "GPSLongitude", DefaultType: dtRational})
	s.add(&Descriptor{ID: GPSAltitudeRef, Name: "GPSAltitudeRef", DefaultType: dtByte,
		Enum: map[uint64]string{0: "AboveSeaLevel", 1: "BelowSeaLevel"}})
	s.add(&Descriptor{ID: GPSAltitude, Name: "GPSAltitude", DefaultType: dtRational})
	s.add(&Descriptor{ID: GPSTimeStamp, Name: "GPSTimeStamp", DefaultType: dtRational})
	s.add(&Descriptor{ID: GPSSatellites, Name: "GPSSatellites", DefaultType: dtASCII})
	s.add(&Descriptor{ID: GPSStatus, Name: "GPSStatus", DefaultType: dtASCII,
		Enum: map[uint64]string{'A': "MeasurementInProgress", 'V': "MeasurementInteroperability"}})
	s.add(&Descriptor{ID: GPSMeasureMode, Name: "GPSMeasureMode", DefaultType: dtASCII})
	s.add(&Descriptor{ID: GPSDOP, Name: "GPSDOP", DefaultType: dtRational})
	s.add(&Descriptor{ID: GPSSpeedRef, Name: "GPSSpeedRef", DefaultType: dtASCII})
	s.add(&Descriptor{ID: GPSSpeed, Name: "GPSSpeed", DefaultType: dtRational})
	s.add(&Descriptor{ID: GPSMapDatum, Name: "GPSMapDatum", DefaultType: dtASCII})
	s.add(&Descriptor{ID: GPSDateStamp, Name: "GPSDateStamp", DefaultType: dtASCII})
	return s
}
