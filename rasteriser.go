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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a non-horizontal line segment in device coordinates,
// oriented so that y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasteriser converts paths into binary pixel spans.  A pixel belongs to
// the filled area if its centre lies inside the path.  The caller creates
// one instance and reuses it for multiple paths; internal buffers grow as
// needed but never shrink.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output to this device-space rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	// Zero, negative and NaN values select the default tolerance.
	Flatness float64

	edges     []edge
	activeIdx []int     // indices of edges crossing the current scanline
	crossings []float64 // x-intercepts on the current scanline

	// start and current point of the subpath being collected (user space)
	subpathStart vec.Vec2
	current      vec.Vec2
	inSubpath    bool
}

// NewRasteriser creates a new Rasteriser with the given clip rectangle and
// default values for all other parameters.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Reset restores the default parameters and sets a new clip rectangle,
// keeping the capacity of the internal buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness

	r.edges = r.edges[:0]
	r.activeIdx = r.activeIdx[:0]
	r.crossings = r.crossings[:0]
	r.inSubpath = false
}

// FillEvenOdd fills the path using the even-odd rule.  Open subpaths are
// closed implicitly.  For every scanline y, emit is called once per run of
// inside pixels xMin <= x < xMax, in increasing x order.
//
// The pixel (x, y) is inside if its centre (x+0.5, y+0.5) is inside the
// path.  Points exactly on an edge belong to the area on the right of the
// edge and below it.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit func(y, xMin, xMax int)) {
	yMin, yMax, ok := r.collectPathEdges(p)
	if !ok {
		return
	}
	clipXMin := int(r.Clip.LLx)
	clipXMax := int(r.Clip.URx)

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.activeIdx = r.activeIdx[:0]
	nextEdge := 0
	for y := yMin; y < yMax; y++ {
		yc := float64(y) + 0.5

		for nextEdge < len(r.edges) && r.edges[nextEdge].y0 <= yc {
			r.activeIdx = append(r.activeIdx, nextEdge)
			nextEdge++
		}

		r.crossings = r.crossings[:0]
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if e.y1 <= yc {
				r.activeIdx[i] = r.activeIdx[len(r.activeIdx)-1]
				r.activeIdx = r.activeIdx[:len(r.activeIdx)-1]
				continue
			}
			r.crossings = append(r.crossings, e.x0+e.dxdy*(yc-e.y0))
			i++
		}
		if len(r.crossings) < 2 {
			continue
		}
		slices.Sort(r.crossings)

		for i := 0; i+1 < len(r.crossings); i += 2 {
			// first and one past last pixel with centre in [xa, xb)
			xa := int(math.Ceil(r.crossings[i] - 0.5))
			xb := int(math.Ceil(r.crossings[i+1] - 0.5))
			xa = max(xa, clipXMin)
			xb = min(xb, clipXMax)
			if xa < xb {
				emit(y, xa, xb)
			}
		}
	}
}

// collectPathEdges walks the path and fills the edge list.  It returns the
// range of scanlines with pixel centres between the lowest and highest edge
// point, clamped to the clip rectangle.
func (r *Rasteriser) collectPathEdges(p *path.Data) (yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.inSubpath = false

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.closeSubpath()
			r.current = p.Coords[coordIdx]
			r.subpathStart = r.current
			r.inSubpath = true
			coordIdx++

		case path.CmdLineTo:
			r.addEdge(r.current, p.Coords[coordIdx])
			r.current = p.Coords[coordIdx]
			coordIdx++

		case path.CmdQuadTo:
			r.flattenQuadratic(r.current, p.Coords[coordIdx], p.Coords[coordIdx+1])
			r.current = p.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			r.flattenCubic(r.current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2])
			r.current = p.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			r.closeSubpath()
		}
	}
	r.closeSubpath()

	if len(r.edges) == 0 {
		return 0, 0, false
	}

	devYMin := math.Inf(1)
	devYMax := math.Inf(-1)
	for i := range r.edges {
		devYMin = min(devYMin, r.edges[i].y0)
		devYMax = max(devYMax, r.edges[i].y1)
	}

	yMin = max(int(math.Ceil(devYMin-0.5)), int(r.Clip.LLy))
	yMax = min(int(math.Ceil(devYMax-0.5)), int(r.Clip.URy))
	if yMin >= yMax {
		return 0, 0, false
	}
	return yMin, yMax, true
}

// closeSubpath adds the closing edge of the current subpath, if needed.
func (r *Rasteriser) closeSubpath() {
	if !r.inSubpath {
		return
	}
	if r.current != r.subpathStart {
		r.addEdge(r.current, r.subpathStart)
	}
	r.current = r.subpathStart
	r.inSubpath = false
}

// addEdge transforms a segment from user space to device space and adds it
// to the edge list.  Horizontal segments never cross a pixel centre line
// and are dropped.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	x0 := r.CTM[0]*p0.X + r.CTM[2]*p0.Y + r.CTM[4]
	y0 := r.CTM[1]*p0.X + r.CTM[3]*p0.Y + r.CTM[5]
	x1 := r.CTM[0]*p1.X + r.CTM[2]*p1.Y + r.CTM[4]
	y1 := r.CTM[1]*p1.X + r.CTM[3]*p1.Y + r.CTM[5]

	dy := y1 - y0
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / (y1 - y0),
	})
}

// transformLinear applies the linear part of the CTM to a vector.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flatness returns the curve flattening tolerance.  Values which are not
// positive select the default.
func (r *Rasteriser) flatness() float64 {
	if !(r.Flatness > 0) {
		return defaultFlatness
	}
	return r.Flatness
}

// flattenQuadratic approximates a quadratic Bézier curve by line segments.
// All points are in user space.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	dev := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if tol := r.flatness(); dev > tol {
		n = int(math.Ceil(math.Sqrt(dev / tol)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments, using
// Wang's formula for the number of segments.  All points are in user space.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*m/(4*r.flatness())))))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// Rasterize fills the polygons and returns the union of the filled areas.
// An empty polygon set gives an all-background mask.
func Rasterize(ps Polygons) (*Mask, error) {
	if err := ps.Validate(); err != nil {
		return nil, reject("Rasterize", err)
	}
	return rasterize(ps.Polys, ps.Width, ps.Height, matrix.Identity), nil
}

// RasterizeScaled is like [Rasterize], but renders the polygons onto a
// canvas of a different size.  Vertex coordinates are scaled from the
// canvas of ps to width×height.  This is used when an annotation is shown
// on a resized copy of its image.
func RasterizeScaled(ps Polygons, width, height int) (*Mask, error) {
	if err := ps.Validate(); err != nil {
		return nil, reject("RasterizeScaled", err)
	}
	if err := checkSize(width, height); err != nil {
		return nil, reject("RasterizeScaled", err)
	}
	if ps.Width == 0 || ps.Height == 0 {
		return newMask(width, height), nil
	}
	ctm := matrix.Scale(float64(width)/float64(ps.Width), float64(height)/float64(ps.Height))
	return rasterize(ps.Polys, width, height, ctm), nil
}

func rasterize(polys []Polygon, width, height int, ctm matrix.Matrix) *Mask {
	m := newMask(width, height)
	if width == 0 || height == 0 {
		return m
	}

	r := NewRasteriser(rect.Rect{URx: float64(width), URy: float64(height)})
	r.CTM = ctm
	emit := func(y, xMin, xMax int) {
		for x := xMin; x < xMax; x++ {
			m.set(x, y)
		}
	}
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		r.FillEvenOdd(poly.Path(), emit)
	}
	return m
}

// Default values for rasteriser parameters.
const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent of an edge.
	horizontalEdgeThreshold = 1e-10
)
