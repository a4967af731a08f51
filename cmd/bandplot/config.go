package main

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/vdobler/bandplot"
	"github.com/vdobler/bandplot/data"
	"github.com/vdobler/bandplot/region"
	"gonum.org/v1/plot/vg"
)

// Config describes a figure.
type Config struct {
	Title    string          `toml:"title"`
	Rows     int             `toml:"rows"`
	Width    string          `toml:"width"`
	Height   string          `toml:"height"`
	FontSize float64         `toml:"font_size"`
	Subplots []SubplotConfig `toml:"subplot"`
}

// SubplotConfig describes one subplot. File names are relative to the
// directory of the configuration file.
type SubplotConfig struct {
	Title    string `toml:"title"`
	XTitle   string `toml:"x_title"`
	Bands    string `toml:"bands"`
	KVectors string `toml:"kvectors"`
	Parity   string `toml:"parity"`
	Label    string `toml:"label"`
	Color    string `toml:"color"`
	Marks    bool   `toml:"marks"`
	CorrectX bool   `toml:"correct_x"`
	Legend   bool   `toml:"legend"`

	// Crop is "auto", "none", an upper bound or a [min, max] pair.
	Crop any `toml:"crop"`

	Ticks     []TickConfig      `toml:"ticks"`
	LightCone *LightConeConfig  `toml:"light_cone"`
	Gaps      []GapConfig       `toml:"gap"`
	Continua  []ContinuumConfig `toml:"continuum"`
	Fills     []FillConfig      `toml:"fill"`
	DOS       string            `toml:"dos"`
}

type TickConfig struct {
	Pos   float64 `toml:"pos"`
	Label string  `toml:"label"`
}

type LightConeConfig struct {
	Index float64 `toml:"index"`
	Fill  bool    `toml:"fill"`
}

type GapConfig struct {
	From      float64  `toml:"from"`
	To        float64  `toml:"to"`
	LightLine bool     `toml:"light_line"`
	Color     string   `toml:"color"`
	Alpha     *float64 `toml:"alpha"`
}

type ContinuumConfig struct {
	File           string   `toml:"file"`
	PreventOverlap bool     `toml:"prevent_overlap"`
	Color          string   `toml:"color"`
	Alpha          *float64 `toml:"alpha"`
}

type FillConfig struct {
	From  int      `toml:"from"`
	To    int      `toml:"to"`
	Color string   `toml:"color"`
	Alpha *float64 `toml:"alpha"`
}

// DecodeConfig reads a TOML figure description. Unknown keys are errors.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := Config{Rows: 1, Width: "8in", Height: "5in", FontSize: 12}
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var de *toml.DecodeError
		if errors.As(err, &de) {
			row, col := de.Position()
			return Config{}, fmt.Errorf("line %d, column %d: %w", row, col, err)
		}
		return Config{}, err
	}
	if len(cfg.Subplots) == 0 {
		return Config{}, errors.New("no subplot configured")
	}
	return cfg, nil
}

// LoadConfig reads the named TOML file.
func LoadConfig(name string) (Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	cfg, err := DecodeConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// Size returns the width and height of the figure.
func (cfg Config) Size() (w, h vg.Length, err error) {
	if w, err = parseLength(cfg.Width); err != nil {
		return 0, 0, err
	}
	if h, err = parseLength(cfg.Height); err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

// Figure builds the figure, reading data files relative to dir.
func (cfg Config) Figure(dir string, logger *slog.Logger) (*bandplot.Figure, error) {
	fig := bandplot.NewFigure(cfg.Rows)
	fig.Title = cfg.Title
	fig.Logger = logger
	if cfg.FontSize > 0 {
		fig.Style = bandplot.DefaultStyle(vg.Length(cfg.FontSize))
	}
	for i, sc := range cfg.Subplots {
		sp := fig.Current()
		if i > 0 {
			sp = fig.NextPlot()
		}
		if err := sc.apply(sp, dir, logger); err != nil {
			return nil, fmt.Errorf("subplot %d: %w", i+1, err)
		}
	}
	return fig, nil
}

func (sc SubplotConfig) apply(sp *bandplot.Subplot, dir string, logger *slog.Logger) error {
	path := func(name string) string {
		if filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(dir, name)
	}

	sp.SetTitle(sc.Title)
	if sc.XTitle != "" {
		sp.XTitle = sc.XTitle
	}
	sty := sp.Figure.Style

	opt := bandplot.BandOptions{
		Label:    sc.Label,
		Marks:    sc.Marks,
		CorrectX: sc.CorrectX,
		Ticks:    sc.ticks(),
	}
	var err error
	if opt.Color, err = parseColor(sc.Color); err != nil {
		return err
	}
	if opt.Crop, err = parseCrop(sc.Crop); err != nil {
		return err
	}

	if sc.Bands != "" {
		bands, err := data.ReadTableFile(path(sc.Bands))
		if err != nil {
			return err
		}
		var k data.KVectors
		if sc.KVectors != "" {
			if k, err = data.ReadKVectorsFile(path(sc.KVectors)); err != nil {
				return err
			}
		}
		if sc.Parity != "" {
			if opt.Parity, err = data.ReadTableFile(path(sc.Parity)); err != nil {
				return err
			}
		}
		logger.Debug("plotting bands", "file", sc.Bands, "rows", bands.Rows(), "bands", bands.Cols())
		sp.PlotBands(bands, k, opt)
	}

	if sc.DOS != "" {
		t, err := data.ReadTableFile(path(sc.DOS))
		if err != nil {
			return err
		}
		if t.Rows() > 0 && t.Cols() < 2 {
			return fmt.Errorf("%s: DOS file needs two columns", sc.DOS)
		}
		sp.PlotDOS(t.Column(0), t.Column(1))
	}

	n := 1.0
	if lc := sc.LightCone; lc != nil {
		if lc.Index > 0 {
			n = lc.Index
		}
		sp.AddLightCone(n, lc.Fill)
	}

	for _, g := range sc.Gaps {
		clr, err := parseColor(g.Color)
		if err != nil {
			return err
		}
		var light region.Curve
		if g.LightLine {
			if light, err = sp.State.LightLine(n); err != nil {
				logger.Warn("skipping gap clipped at the light line",
					"subplot", sc.Title, "from", g.From, "to", g.To, "err", err)
				continue
			}
		}
		sp.AddBandGap(g.From, g.To, light, clr, alpha(g.Alpha, sty.Gap.Alpha))
	}

	for _, c := range sc.Continua {
		clr, err := parseColor(c.Color)
		if err != nil {
			return err
		}
		t, err := data.ReadTableFile(path(c.File))
		if err != nil {
			return err
		}
		res := sp.AddContinuum(t, clr, alpha(c.Alpha, sty.Continuum.Alpha), c.PreventOverlap)
		logger.Debug("continuum resolved", "file", c.File,
			"polygons", len(res.Polygons), "intersections", len(res.Intersections))
	}

	for _, f := range sc.Fills {
		clr, err := parseColor(f.Color)
		if err != nil {
			return err
		}
		sp.FillBetweenBands(f.From, f.To, clr, alpha(f.Alpha, sty.FillBetween.Alpha))
	}

	if sc.Legend {
		sp.AddLegend()
	}
	return nil
}

func (sc SubplotConfig) ticks() bandplot.Ticks {
	t := bandplot.Ticks{}
	for _, tc := range sc.Ticks {
		t.Positions = append(t.Positions, tc.Pos)
		t.Labels = append(t.Labels, tc.Label)
	}
	return t
}

func alpha(a *float64, def float64) float64 {
	if a == nil {
		return def
	}
	return *a
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

// parseCrop interprets the decoded TOML value of a crop key.
func parseCrop(v any) (bandplot.Crop, error) {
	switch x := v.(type) {
	case nil:
		return bandplot.Crop{}, nil
	case string:
		switch x {
		case "auto", "":
			return bandplot.Crop{Kind: bandplot.CropAuto}, nil
		case "none":
			return bandplot.Crop{Kind: bandplot.CropNone}, nil
		}
	case []any:
		if len(x) == 2 {
			lo, ok1 := toFloat(x[0])
			hi, ok2 := toFloat(x[1])
			if ok1 && ok2 && lo < hi {
				return bandplot.Range(lo, hi), nil
			}
		}
	default:
		if f, ok := toFloat(x); ok {
			return bandplot.UpperBound(f), nil
		}
	}
	return bandplot.Crop{}, fmt.Errorf("bad crop %v: want \"auto\", \"none\", a number or [min, max]", v)
}

// parseColor parses "#rrggbb" or "#rrggbbaa". The empty string is nil.
func parseColor(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	h := strings.TrimPrefix(s, "#")
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return nil, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("bad color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

var units = []struct {
	suffix string
	unit   vg.Length
}{
	{"in", vg.Inch},
	{"cm", vg.Centimeter},
	{"mm", vg.Millimeter},
	{"pt", vg.Inch / 72},
}

// parseLength parses a length like "8in" or "12.5cm".
func parseLength(s string) (vg.Length, error) {
	s = strings.TrimSpace(s)
	for _, u := range units {
		if num := strings.TrimSuffix(s, u.suffix); num != s {
			f, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
			if err != nil || f <= 0 {
				return 0, fmt.Errorf("bad length %q", s)
			}
			return vg.Length(f) * u.unit, nil
		}
	}
	return 0, fmt.Errorf("bad length %q: unit must be in, cm, mm or pt", s)
}
