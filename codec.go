// seehuhn.de/go/mask - binary segmentation masks for image annotations
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package mask

import "math"

// CompactRLE is the compact string form of an [RLE], as used for "counts"
// strings in COCO annotation files.
//
// Each run is stored as a signed integer in groups of 5 bits, least
// significant group first.  Every group becomes one byte in the range
// '0' to 'o' (48 to 111): the low 5 bits hold the group, 0x20 marks that
// another group follows, and 0x10 in the final group is the sign bit.
// From the fourth run on, the stored value is the difference to the run
// two positions earlier.
type CompactRLE struct {
	Width  int
	Height int
	Counts string
}

const (
	compactOffset = 48   // '0'
	compactMax    = 111  // 'o'
	groupBits     = 5    // payload bits per byte
	groupMask     = 0x1f // payload of a byte
	signBit       = 0x10 // sign bit in the final group
	moreBit       = 0x20 // continuation flag

	// maxGroups bounds the length of a single value.  Seven groups hold
	// 35 bits, enough for the difference of two uint32 values.
	maxGroups = 7
)

// deltaStart is the first run index which is stored as a difference to
// the run two positions earlier.
const deltaStart = 3

// Compact returns the compact string form of the runs.
func (r RLE) Compact() CompactRLE {
	buf := make([]byte, 0, 2*len(r.Counts))
	for i, n := range r.Counts {
		x := int64(n)
		if i >= deltaStart {
			x -= int64(r.Counts[i-2])
		}
		buf = appendCompactInt(buf, x)
	}
	return CompactRLE{
		Width:  r.Width,
		Height: r.Height,
		Counts: string(buf),
	}
}

func appendCompactInt(buf []byte, x int64) []byte {
	more := true
	for more {
		c := byte(x & groupMask)
		x >>= groupBits
		if c&signBit != 0 {
			more = x != -1
		} else {
			more = x != 0
		}
		if more {
			c |= moreBit
		}
		buf = append(buf, c+compactOffset)
	}
	return buf
}

// Decode converts the compact string back into runs.  The result is
// checked against the mask size.
func (c CompactRLE) Decode() (RLE, error) {
	s := c.Counts
	counts := make([]uint32, 0, len(s)/2+1)

	p := 0
	for p < len(s) {
		var x int64
		k := 0
		for group := 0; ; group++ {
			if group == maxGroups {
				return RLE{}, reject("CompactRLE.Decode",
					malformedf("value at byte %d exceeds %d groups", p-group, maxGroups))
			}
			if p >= len(s) {
				return RLE{}, reject("CompactRLE.Decode",
					malformedf("truncated value at end of string"))
			}
			b := s[p]
			if b < compactOffset || b > compactMax {
				return RLE{}, reject("CompactRLE.Decode",
					malformedf("invalid byte 0x%02x at position %d", b, p))
			}
			v := int64(b - compactOffset)
			p++

			x |= (v & groupMask) << k
			k += groupBits
			if v&moreBit == 0 {
				if v&signBit != 0 {
					x |= -1 << k
				}
				break
			}
		}

		i := len(counts)
		if i >= deltaStart {
			x += int64(counts[i-2])
		}
		if x < 0 || x > math.MaxUint32 {
			return RLE{}, reject("CompactRLE.Decode",
				malformedf("run %d has invalid length %d", i, x))
		}
		counts = append(counts, uint32(x))
	}

	r := RLE{
		Width:  c.Width,
		Height: c.Height,
		Counts: counts,
	}
	if err := r.Validate(); err != nil {
		return RLE{}, reject("CompactRLE.Decode",
			malformedf("%s", err.(*Error).Msg))
	}
	return r, nil
}

// Mask decodes the string and expands the runs into a pixel mask.
func (c CompactRLE) Mask() (*Mask, error) {
	r, err := c.Decode()
	if err != nil {
		return nil, err
	}
	return r.Mask()
}

// Compact returns the compact run-length form of the mask.
func (m *Mask) Compact() CompactRLE {
	return m.RLE().Compact()
}
