package bandplot

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Figure

// A Figure is a grid of subplots. Subplots are filled row by row; the
// number of columns follows from the number of rows and subplots.
type Figure struct {
	Title    string
	Rows     int
	Subplots []*Subplot
	Style    Style

	// Logger receives the warnings of all subplots. Nil means
	// slog.Default().
	Logger *slog.Logger
}

// NewFigure returns a figure with the given number of rows and one empty
// subplot.
func NewFigure(rows int) *Figure {
	f := &Figure{Style: DefaultStyle(12)}
	f.SetNumRows(rows)
	f.NextPlot()
	return f
}

func (f *Figure) logger() *slog.Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return slog.Default()
}

// NextPlot appends a new empty subplot and makes it the current one.
func (f *Figure) NextPlot() *Subplot {
	sp := &Subplot{
		Figure: f,
		YTitle: f.Style.YTitle,
		State:  NewSubplotState(cycle(f.Style.Palette, 0)),
	}
	f.Subplots = append(f.Subplots, sp)
	return sp
}

// Current returns the last subplot, or nil if f has none.
func (f *Figure) Current() *Subplot {
	if len(f.Subplots) == 0 {
		return nil
	}
	return f.Subplots[len(f.Subplots)-1]
}

// SetNumRows sets the number of rows. Values below 1 mean 1.
func (f *Figure) SetNumRows(n int) {
	f.Rows = max(n, 1)
}

// Layout returns the number of rows and columns of the subplot grid.
// Rows never exceed the number of subplots.
func (f *Figure) Layout() (rows, cols int) {
	n := len(f.Subplots)
	if n == 0 {
		return 0, 0
	}
	rows = max(f.Rows, 1)
	cols = (n + rows - 1) / rows
	rows = min(rows, n)
	return rows, cols
}

// Plots returns the gonum plots of all subplots arranged as in Layout.
// Cells after the last subplot are nil.
func (f *Figure) Plots() ([][]*plot.Plot, error) {
	rows, cols := f.Layout()
	plots := make([][]*plot.Plot, rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, cols)
	}
	for i, sp := range f.Subplots {
		p, err := sp.Plot()
		if err != nil {
			return nil, fmt.Errorf("subplot %d: %w", i+1, err)
		}
		plots[i/cols][i%cols] = p
	}
	return plots, nil
}

// Draw draws f onto c.
func (f *Figure) Draw(c draw.Canvas) error {
	plots, err := f.Plots()
	if err != nil {
		return err
	}
	if len(plots) == 0 {
		return nil
	}

	if f.Title != "" {
		c.FillText(f.Style.Title, vg.Point{X: c.Center().X, Y: c.Max.Y}, f.Title)
		c.Max.Y -= f.Style.Title.Height(f.Title) + f.Style.PadY
	}

	rows, cols := f.Layout()
	tiles := draw.Tiles{
		Rows: rows,
		Cols: cols,
		PadX: f.Style.PadX,
		PadY: f.Style.PadY,
	}

	// Align needs a plot in every cell.
	if rows*cols == len(f.Subplots) {
		canvases := plot.Align(plots, tiles, c)
		for r := range plots {
			for col, p := range plots[r] {
				p.Draw(canvases[r][col])
			}
		}
		return nil
	}
	for r := range plots {
		for col, p := range plots[r] {
			if p != nil {
				p.Draw(tiles.At(c, col, r))
			}
		}
	}
	return nil
}

// WriteTo draws f on a canvas of size w×h in the given format ("png",
// "svg", "pdf", "eps", ...) and writes it to out.
func (f *Figure) WriteTo(out io.Writer, w, h vg.Length, format string) error {
	cw, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return err
	}
	if err := f.Draw(draw.New(cw)); err != nil {
		return err
	}
	_, err = cw.WriteTo(out)
	return err
}

// Save writes f of size w×h to the named file. The format is taken from
// the file extension.
func (f *Figure) Save(w, h vg.Length, file string) (err error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(file), "."))
	out, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return f.WriteTo(out, w, h, format)
}
