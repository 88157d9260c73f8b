// 14 Oct 2026

// Package plot draws a bar chart of how many residues each file had.
// It is only meant for a quick look at a run, so there are no axes and
// no options.
package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/golang/freetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/andrew-torda/seqcount/pkg/report"
)

// Sizes are in pixels.
const (
	Width    = 640
	RowH     = 24
	Margin   = 8
	LabelW   = 240
	fontSize = 12
	maxLabel = 36 // characters of a file name we will print
)

var barColour = color.RGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff}

// BarColour returns the colour used to fill bars.
func BarColour() color.RGBA { return barColour }

// Height is the height of the picture for n files.
func Height(n int) int { return 2*Margin + n*RowH }

// BarRect is where the bar for row i goes, if its scaled length is frac.
func BarRect(i int, frac float32) image.Rectangle {
	x0 := LabelW
	x1 := x0 + int(frac*float32(Width-LabelW-Margin))
	y0 := Margin + i*RowH + 4
	return image.Rect(x0, y0, x1, y0+RowH-8)
}

// shorten keeps the end of a long file name, which is usually the
// interesting part.
func shorten(s string) string {
	if r := []rune(s); len(r) > maxLabel {
		return "..." + string(r[len(r)-maxLabel+3:])
	}
	return s
}

// Draw makes the picture. Each row has a file name and a bar whose
// length is the residue count relative to the biggest file.
func Draw(tly *report.Tally) (*image.RGBA, error) {
	results := tly.Results()
	if len(results) == 0 {
		return nil, errors.New("no results to plot")
	}
	fnt, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("plot font: %w", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, Width, Height(len(results))))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(fnt)
	c.SetFontSize(fontSize)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.Black)

	mat := tly.Matrix()
	bar := &image.Uniform{C: barColour}
	for i, r := range results {
		baseline := Margin + i*RowH + RowH/2 + fontSize/2 - 2
		if _, err := c.DrawString(shorten(r.Fname), freetype.Pt(Margin, baseline)); err != nil {
			return nil, fmt.Errorf("plot label: %w", err)
		}
		rect := BarRect(i, mat.Mat[i][report.ColRes])
		draw.Draw(img, rect, bar, image.Point{}, draw.Src)
		num := fmt.Sprintf("%d", r.NRes)
		if _, err := c.DrawString(num, freetype.Pt(rect.Max.X+4, baseline)); err != nil {
			return nil, fmt.Errorf("plot label: %w", err)
		}
	}
	return img, nil
}

// Write draws the picture and saves it as png.
func Write(fname string, tly *report.Tally) error {
	img, err := Draw(tly)
	if err != nil {
		return err
	}
	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("plot file: %w", err)
	}
	if err := png.Encode(fp, img); err != nil {
		fp.Close()
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	return fp.Close()
}
