package jpeg

// Marker bytes, as they appear after the 0xFF lead. Names follow the JPEG
// (ITU-T T.81) marker table.
const (
	lead byte = 0xFF
	zero byte = 0x00

	TEM byte = 0x01

	RST0 byte = 0xD0
	RST1 byte = 0xD1
	RST2 byte = 0xD2
	RST3 byte = 0xD3
	RST4 byte = 0xD4
	RST5 byte = 0xD5
	RST6 byte = 0xD6
	RST7 byte = 0xD7

	SOI byte = 0xD8
	EOI byte = 0xD9
	SOS byte = 0xDA
	DQT byte = 0xDB
	DNL byte = 0xDC
	DRI byte = 0xDD
	DHP byte = 0xDE
	EXP byte = 0xDF

	APP0  byte = 0xE0
	APP1  byte = 0xE1
	APP2  byte = 0xE2
	APP3  byte = 0xE3
	APP4  byte = 0xE4
	APP5  byte = 0xE5
	APP6  byte = 0xE6
	APP7  byte = 0xE7
	APP8  byte = 0xE8
	APP9  byte = 0xE9
	APP10 byte = 0xEA
	APP11 byte = 0xEB
	APP12 byte = 0xEC
	APP13 byte = 0xED
	APP14 byte = 0xEE
	APP15 byte = 0xEF

	COM byte = 0xFE
)

// isRestart reports whether m is one of the restart markers RST0..RST7.
func isRestart(m byte) bool {
	return m >= RST0 && m <= RST7
}

// isLengthless reports whether marker m carries no length field and no
// content: SOI, EOI, the restart markers, and TEM.
func isLengthless(m byte) bool {
	return m == SOI || m == EOI || m == TEM || isRestart(m)
}

// hasLength is the complement of isLengthless, named to match how the
// encode path reads: every marker that isn't one of the fixed no-content
// markers carries a 2-byte big-endian length.
func hasLength(m byte) bool {
	return !isLengthless(m)
}
