package msgbox

import (
	"encoding/binary"
	"unicode/utf16"
)

// StringBlockID returns the RT_STRING resource id holding string id and the
// entry index inside that block. Each block stores 16 strings.
func StringBlockID(id uint32) (block uint16, index int) {
	return uint16(id>>4) + 1, int(id & 0x0F)
}

// ParseStringBlock extracts entry index from a raw RT_STRING block. Each
// entry is a little-endian uint16 length followed by that many UTF-16 code
// units. Empty or truncated entries report false.
func ParseStringBlock(data []byte, index int) (string, bool) {
	if index < 0 || index > 15 {
		return "", false
	}
	off := 0
	for i := 0; ; i++ {
		if off+2 > len(data) {
			return "", false
		}
		n := int(binary.LittleEndian.Uint16(data[off:]))
		off += 2
		if i < index {
			off += n * 2
			continue
		}
		if n == 0 || off+n*2 > len(data) {
			return "", false
		}
		units := make([]uint16, n)
		for j := range units {
			units[j] = binary.LittleEndian.Uint16(data[off+j*2:])
		}
		return string(utf16.Decode(units)), true
	}
}
