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

import (
	"bytes"
	"encoding/json"
)

// rleJSON is the annotation file layout of run-length data.  Size is
// [height, width].  Counts is a JSON array for [RLE] and a string for
// [CompactRLE].
type rleJSON struct {
	Size   [2]int `json:"size"`
	Counts any    `json:"counts"`
}

// MarshalJSON implements the [json.Marshaler] interface.
func (r RLE) MarshalJSON() ([]byte, error) {
	counts := r.Counts
	if counts == nil {
		counts = []uint32{}
	}
	return json.Marshal(rleJSON{
		Size:   [2]int{r.Height, r.Width},
		Counts: counts,
	})
}

// MarshalJSON implements the [json.Marshaler] interface.
func (c CompactRLE) MarshalJSON() ([]byte, error) {
	return json.Marshal(rleJSON{
		Size:   [2]int{c.Height, c.Width},
		Counts: c.Counts,
	})
}

// MarshalJSON implements the [json.Marshaler] interface.  The canvas size is
// not part of the output.
func (ps Polygons) MarshalJSON() ([]byte, error) {
	return json.Marshal(ps.Flat())
}

// ParseSegmentation parses the "segmentation" field of an annotation.
//
// Three layouts are accepted: a list of flat polygons, an object with
// "size" and a "counts" array, and an object with "size" and a "counts"
// string.  Polygons take their canvas size from width and height.  For
// run-length data the size is read from the input; if width or height
// is non-zero, it must match.
func ParseSegmentation(data []byte, width, height int) (Segmentation, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, reject("ParseSegmentation", emptyf("no segmentation data"))
	}

	switch data[0] {
	case '[':
		var coords [][]float64
		if err := json.Unmarshal(data, &coords); err != nil {
			return nil, reject("ParseSegmentation", malformedf("invalid polygon list: %v", err))
		}
		return NewPolygonSegmentation(coords, width, height)

	case '{':
		var raw struct {
			Size   []int           `json:"size"`
			Counts json.RawMessage `json:"counts"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, reject("ParseSegmentation", malformedf("invalid run-length object: %v", err))
		}
		if len(raw.Size) != 2 {
			return nil, reject("ParseSegmentation",
				shapef("size has %d entries, expected [height, width]", len(raw.Size)))
		}
		h, w := raw.Size[0], raw.Size[1]
		if err := checkSize(w, h); err != nil {
			return nil, reject("ParseSegmentation", err)
		}
		if (width != 0 || height != 0) && (w != width || h != height) {
			return nil, reject("ParseSegmentation",
				shapef("size %dx%d does not match image size %dx%d", w, h, width, height))
		}

		counts := bytes.TrimSpace(raw.Counts)
		if len(counts) > 0 && counts[0] == '"' {
			var s string
			if err := json.Unmarshal(counts, &s); err != nil {
				return nil, reject("ParseSegmentation", malformedf("invalid counts string: %v", err))
			}
			return CompactRLE{Width: w, Height: h, Counts: s}, nil
		}

		var runs []uint32
		if err := json.Unmarshal(counts, &runs); err != nil {
			return nil, reject("ParseSegmentation", malformedf("invalid counts array: %v", err))
		}
		r := RLE{Width: w, Height: h, Counts: runs}
		if err := r.Validate(); err != nil {
			return nil, reject("ParseSegmentation", err)
		}
		return r, nil

	default:
		return nil, reject("ParseSegmentation",
			malformedf("segmentation must be a JSON array or object"))
	}
}
