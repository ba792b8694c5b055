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
	"image"

	"go.uber.org/zap"
	"seehuhn.de/go/geom/vec"
)

// Boundary tracing walks along pixel edges, on the lattice of pixel corners.
// Corner (cx, cy) is the top-left corner of pixel (cx, cy).  Directions are
// north, east, south and west, with the y axis pointing down.
var (
	stepX = [4]int{0, 1, 0, -1}
	stepY = [4]int{-1, 0, 1, 0}

	// pixels ahead of a corner, relative to the corner, on the left and on
	// the right of the direction of travel
	frontLeftX  = [4]int{-1, 0, 0, -1}
	frontLeftY  = [4]int{-1, -1, 0, 0}
	frontRightX = [4]int{0, 0, -1, -1}
	frontRightY = [4]int{-1, 0, 0, -1}
)

const north = 0

// Polygons extracts one polygon for every 4-connected foreground component
// of the mask.  Each polygon follows the outer boundary of its component
// along pixel edges, so all vertices have integer coordinates.  Holes are
// not represented: rasterizing the result gives back the mask with all
// holes filled.  For masks without holes, [Rasterize] reproduces the mask
// exactly.
//
// Components are returned in column-major order of their first pixel.
func (m *Mask) Polygons() (Polygons, error) {
	ps := Polygons{Width: m.Width, Height: m.Height}

	labels := make([]int32, len(m.pix))
	var stack []image.Point
	var label int32
	for x := range m.Width {
		for y := range m.Height {
			off := pixelOffset(x, y, m.Height)
			if m.pix[off] == 0 || labels[off] != 0 {
				continue
			}
			label++
			stack = m.labelComponent(labels, x, y, label, stack)

			poly, err := m.traceOuter(labels, x, y, label)
			if err != nil {
				return Polygons{}, err
			}
			ps.Polys = append(ps.Polys, poly)
		}
	}

	Logger().Debug("contours extracted",
		zap.Int("width", m.Width),
		zap.Int("height", m.Height),
		zap.Int("components", len(ps.Polys)))
	return ps, nil
}

// labelComponent assigns label to all pixels 4-connected to (x, y).
// The stack is returned for reuse.
func (m *Mask) labelComponent(labels []int32, x, y int, label int32, stack []image.Point) []image.Point {
	stack = append(stack[:0], image.Point{X: x, Y: y})
	labels[pixelOffset(x, y, m.Height)] = label
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for d := range 4 {
			nx, ny := p.X+stepX[d], p.Y+stepY[d]
			if m.At(nx, ny) == 0 {
				continue
			}
			off := pixelOffset(nx, ny, m.Height)
			if labels[off] != 0 {
				continue
			}
			labels[off] = label
			stack = append(stack, image.Point{X: nx, Y: ny})
		}
	}
	return stack
}

// traceOuter follows the outer boundary of the component with the given
// label, keeping the component on the right-hand side.  (x0, y0) must be
// the first pixel of the component in column-major order, so that its left
// edge is on the outer boundary.
func (m *Mask) traceOuter(labels []int32, x0, y0 int, label int32) (Polygon, error) {
	inside := func(x, y int) bool {
		if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
			return false
		}
		return labels[pixelOffset(x, y, m.Height)] == label
	}

	// Start at the bottom-left corner of (x0, y0), going north.
	sx, sy := x0, y0+1
	cx, cy, d := sx, sy, north

	var poly Polygon
	maxSteps := 4 * (m.Width + 1) * (m.Height + 1)
	for step := 0; ; step++ {
		if step > maxSteps {
			return nil, invariantf("boundary of component %d at (%d, %d) does not close",
				label, x0, y0)
		}

		cx += stepX[d]
		cy += stepY[d]

		next := d
		switch {
		case !inside(cx+frontRightX[d], cy+frontRightY[d]):
			// Also taken when only the front-left pixel is inside: pixels
			// touching at a corner belong to different components.
			next = (d + 1) % 4
		case inside(cx+frontLeftX[d], cy+frontLeftY[d]):
			next = (d + 3) % 4
		}
		if next != d {
			poly = append(poly, vec.Vec2{X: float64(cx), Y: float64(cy)})
		}
		d = next

		if cx == sx && cy == sy && d == north {
			break
		}
	}
	return poly, nil
}
