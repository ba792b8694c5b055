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

// Command genpdf draws every test case into a PDF file and renders it to a
// grayscale PNG with Ghostscript, for visual comparison with the masks
// produced by the mask package.
//
// Settings are read from an optional YAML file (-config) and from
// environment variables with prefix MASKGEN_, e.g. MASKGEN_REF_DIR.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/mask"
	"seehuhn.de/go/mask/testcases"
)

type config struct {
	RefDir     string `mapstructure:"ref_dir"`
	GSBinary   string `mapstructure:"gs_binary"`
	Resolution int    `mapstructure:"resolution"`
	Release    bool   `mapstructure:"release"`
}

func loadConfig(fname string) (*config, error) {
	v := viper.New()
	v.SetDefault("ref_dir", "testdata/reference")
	v.SetDefault("gs_binary", "gs")
	v.SetDefault("resolution", 72)
	v.SetDefault("release", false)

	v.SetEnvPrefix("MASKGEN")
	v.AutomaticEnv()

	if fname != "" {
		v.SetConfigFile(fname)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Resolution <= 0 {
		return nil, fmt.Errorf("invalid resolution %d", cfg.Resolution)
	}
	return &cfg, nil
}

func main() {
	configFile := flag.String("config", "", "optional YAML configuration file")
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Release)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	mask.SetLogger(logger)

	if err := os.MkdirAll(cfg.RefDir, 0755); err != nil {
		logger.Fatal("cannot create output directory", zap.Error(err))
	}

	for name, tc := range testcases.Each {
		pdfPath := filepath.Join(cfg.RefDir, name+".pdf")
		pngPath := filepath.Join(cfg.RefDir, name+".png")

		if err := generatePDF(tc, pdfPath); err != nil {
			logger.Fatal("cannot write PDF", zap.String("name", name), zap.Error(err))
		}
		if err := renderPNG(cfg, pdfPath, pngPath); err != nil {
			logger.Fatal("cannot render PNG", zap.String("name", name), zap.Error(err))
		}
		logger.Info("generated", zap.String("name", name), zap.String("png", pngPath))
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	ps, err := mask.PolygonsFromFlat(tc.Polygons, tc.Width, tc.Height)
	if err != nil {
		return err
	}

	// one point per pixel at 72 DPI
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background, so that the gray value is the foreground coverage
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left, annotations use top-left
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})
	page.SetFillColor(color.DeviceGray(1))

	// Each polygon is filled separately: overlapping polygons are combined
	// by union, which a single even-odd fill would not do.
	for _, poly := range ps.Polys {
		if len(poly) < 3 {
			continue
		}
		page.MoveTo(poly[0].X, poly[0].Y)
		for _, v := range poly[1:] {
			page.LineTo(v.X, v.Y)
		}
		page.ClosePath()
		page.FillEvenOdd()
	}

	return page.Close()
}

func renderPNG(cfg *config, pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -dGraphicsAlphaBits=1: no anti-aliasing, to match binary masks
	cmd := exec.Command(
		cfg.GSBinary, "-q",
		"-sDEVICE=pnggray",
		"-r"+strconv.Itoa(cfg.Resolution),
		"-dGraphicsAlphaBits=1",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
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
