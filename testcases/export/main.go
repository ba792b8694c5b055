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

// Command export writes all test cases as COCO-style annotations to
// testdata/testcases.json.  Every annotation carries the polygon, raw
// run-length and compact run-length form of its mask, together with area
// and bounding box.  Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"seehuhn.de/go/mask"
	"seehuhn.de/go/mask/testcases"
)

type annotation struct {
	Name       string          `json:"name"`
	Width      int             `json:"width"`
	Height     int             `json:"height"`
	Polygon    mask.Polygons   `json:"polygon"`
	RLE        mask.RLE        `json:"rle"`
	CompactRLE mask.CompactRLE `json:"compact_rle"`
	Area       int             `json:"area"`
	BBox       mask.BBox       `json:"bbox"`
}

func main() {
	out := flag.String("o", "testdata/testcases.json", "output file")
	release := flag.Bool("release", false, "use production logging")
	flag.Parse()

	logger, err := newLogger(*release)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	mask.SetLogger(logger)

	if err := run(*out, logger); err != nil {
		logger.Fatal("export failed", zap.Error(err))
	}
}

func run(fname string, logger *zap.Logger) error {
	var res struct {
		Annotations []annotation `json:"annotations"`
	}
	for name, tc := range testcases.Each {
		ann, err := convert(name, tc)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		logger.Debug("converted", zap.String("name", name), zap.Int("area", ann.Area))
		res.Annotations = append(res.Annotations, ann)
	}

	if err := os.MkdirAll(filepath.Dir(fname), 0755); err != nil {
		return err
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	err = enc.Encode(res)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	logger.Info("wrote test cases",
		zap.String("file", fname),
		zap.Int("count", len(res.Annotations)))
	return nil
}

func convert(name string, tc testcases.TestCase) (annotation, error) {
	seg, err := mask.NewPolygonSegmentation(tc.Polygons, tc.Width, tc.Height)
	if err != nil {
		return annotation{}, err
	}
	m, err := mask.ToMask(seg)
	if err != nil {
		return annotation{}, err
	}
	r := m.RLE()
	return annotation{
		Name:       name,
		Width:      tc.Width,
		Height:     tc.Height,
		Polygon:    seg.(mask.Polygons),
		RLE:        r,
		CompactRLE: r.Compact(),
		Area:       r.Area(),
		BBox:       r.BBox(),
	}, nil
}

func newLogger(release bool) (*zap.Logger, error) {
	var cfg zap.Config
	if release {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return cfg.Build()
}
