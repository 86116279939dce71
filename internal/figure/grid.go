// Package figure arranges images into subplot grids: fixed-width figures with
// positional cells, per-column titles, per-cell labels, and dashed divider
// lines separating blocks of rows or columns.
package figure

import (
	"fmt"
	"image"
	"strings"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/inconsolata"
)

// Orientation selects the axis of a divider line.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

const (
	figureWidth = 1200
	cellSpacing = 6

	titleLineHeight = 18
	suptitleBand    = 28.0
)

type divider struct {
	orientation Orientation
	index       int
}

// Grid is a rows x cols arrangement of image cells. Placement is positional:
// the caller decides which image lands in which cell.
type Grid struct {
	rows, cols    int
	cells         [][]image.Image
	cellLabels    [][]string
	titles        []string
	suptitleLeft  string
	suptitleRight string
	dividers      []divider
}

// NewGrid creates an empty grid.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid grid size %dx%d", rows, cols)
	}
	cells := make([][]image.Image, rows)
	labels := make([][]string, rows)
	for r := range cells {
		cells[r] = make([]image.Image, cols)
		labels[r] = make([]string, cols)
	}
	return &Grid{
		rows:       rows,
		cols:       cols,
		cells:      cells,
		cellLabels: labels,
		titles:     make([]string, cols),
	}, nil
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// SetCell places an image at a grid position.
func (g *Grid) SetCell(row, col int, img image.Image) error {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return fmt.Errorf("cell (%d,%d) outside %dx%d grid", row, col, g.rows, g.cols)
	}
	g.cells[row][col] = img
	return nil
}

// SetTitle assigns a top-row column title. Newlines produce stacked lines.
func (g *Grid) SetTitle(col int, title string) error {
	if col < 0 || col >= g.cols {
		return fmt.Errorf("title column %d outside %d columns", col, g.cols)
	}
	g.titles[col] = title
	return nil
}

// SetCellLabel assigns a label drawn vertically along the left edge of a
// cell (the per-image score annotation of the gallery views).
func (g *Grid) SetCellLabel(row, col int, label string) error {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return fmt.Errorf("cell (%d,%d) outside %dx%d grid", row, col, g.rows, g.cols)
	}
	g.cellLabels[row][col] = label
	return nil
}

// SetSuptitle sets the figure-wide caption drawn under the grid, with
// independent left- and right-aligned halves.
func (g *Grid) SetSuptitle(left, right string) {
	g.suptitleLeft = left
	g.suptitleRight = right
}

// SetDivider adds a dashed separator between index n and n+1: between rows
// for Horizontal, between columns for Vertical.
func (g *Grid) SetDivider(o Orientation, n int) error {
	switch o {
	case Horizontal:
		if n < 0 || n >= g.rows-1 {
			return fmt.Errorf("horizontal divider after row %d outside %d rows", n, g.rows)
		}
	case Vertical:
		if n < 0 || n >= g.cols-1 {
			return fmt.Errorf("vertical divider after column %d outside %d columns", n, g.cols)
		}
	default:
		return fmt.Errorf("orientation must be horizontal or vertical, got %s", o)
	}
	g.dividers = append(g.dividers, divider{orientation: o, index: n})
	return nil
}

// Render composites the grid into a single figure.
func (g *Grid) Render() (image.Image, error) {
	cellW := (figureWidth - (g.cols-1)*cellSpacing) / g.cols
	cellH := cellW

	marginTop := 0.0
	if lines := g.titleLines(); lines > 0 {
		marginTop = float64(lines*titleLineHeight + 10)
	}
	marginBottom := 0.0
	if g.suptitleLeft != "" || g.suptitleRight != "" {
		marginBottom = suptitleBand
	}

	width := figureWidth
	height := int(marginTop) + g.rows*cellH + (g.rows-1)*cellSpacing + int(marginBottom)

	dc := gg.NewContext(width, height)
	dc.SetFontFace(inconsolata.Regular8x16)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	canvas, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("unexpected canvas type %T", dc.Image())
	}

	cellOrigin := func(row, col int) (x, y float64) {
		x = float64(col * (cellW + cellSpacing))
		y = marginTop + float64(row*(cellH+cellSpacing))
		return x, y
	}

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			x, y := cellOrigin(r, c)
			if g.cells[r][c] == nil {
				dc.SetRGB(0.93, 0.93, 0.93)
				dc.DrawRectangle(x, y, float64(cellW), float64(cellH))
				dc.Fill()
				continue
			}
			drawFitted(canvas, g.cells[r][c], int(x), int(y), cellW, cellH)
		}
	}

	dc.SetRGB(0, 0, 0)
	for c, title := range g.titles {
		if title == "" {
			continue
		}
		x, _ := cellOrigin(0, c)
		cx := x + float64(cellW)/2
		for i, line := range strings.Split(title, "\n") {
			dc.DrawStringAnchored(line, cx, float64((i+1)*titleLineHeight)-4, 0.5, 0.5)
		}
	}

	for r := range g.cellLabels {
		for c, label := range g.cellLabels[r] {
			if label == "" {
				continue
			}
			x, y := cellOrigin(r, c)
			cy := y + float64(cellH)/2
			dc.Push()
			dc.RotateAbout(gg.Radians(-90), x+12, cy)
			dc.DrawStringAnchored(label, x+12, cy, 0.5, 0.5)
			dc.Pop()
		}
	}

	if marginBottom > 0 {
		y := float64(height) - suptitleBand/2
		if g.suptitleLeft != "" {
			dc.DrawStringAnchored(g.suptitleLeft, 4, y, 0, 0.5)
		}
		if g.suptitleRight != "" {
			dc.DrawStringAnchored(g.suptitleRight, float64(width)-4, y, 1, 0.5)
		}
	}

	dc.SetDash(8, 6)
	dc.SetLineWidth(1.5)
	for _, d := range g.dividers {
		switch d.orientation {
		case Horizontal:
			_, y := cellOrigin(d.index+1, 0)
			mid := y - float64(cellSpacing)/2
			dc.DrawLine(0, mid, float64(width), mid)
		case Vertical:
			x, _ := cellOrigin(0, d.index+1)
			mid := x - float64(cellSpacing)/2
			dc.DrawLine(mid, 0, mid, float64(height))
		}
	}
	dc.Stroke()

	return dc.Image(), nil
}

// SavePNG renders the grid and writes it to path.
func (g *Grid) SavePNG(path string) error {
	img, err := g.Render()
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("save figure: %w", err)
	}
	return nil
}

func (g *Grid) titleLines() int {
	lines := 0
	for _, t := range g.titles {
		if t == "" {
			continue
		}
		if n := strings.Count(t, "\n") + 1; n > lines {
			lines = n
		}
	}
	return lines
}

// drawFitted scales src to fit a cell, preserving aspect ratio and centering.
func drawFitted(dst *image.RGBA, src image.Image, x, y, w, h int) {
	sb := src.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 {
		return
	}

	scale := float64(w) / float64(sb.Dx())
	if s := float64(h) / float64(sb.Dy()); s < scale {
		scale = s
	}
	dw := int(float64(sb.Dx()) * scale)
	dh := int(float64(sb.Dy()) * scale)

	ox := x + (w-dw)/2
	oy := y + (h-dh)/2
	rect := image.Rect(ox, oy, ox+dw, oy+dh)
	xdraw.CatmullRom.Scale(dst, rect, src, sb, xdraw.Src, nil)
}
