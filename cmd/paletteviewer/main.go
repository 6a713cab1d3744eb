// Command paletteviewer renders the eight CGB background and eight
// CGB object palettes as a swatch grid in a fyne window, and plots the
// 5-to-8 bit channel expansion curve alongside it.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/nullpixel/gbcore/internal/ppu/palette"
)

func swatchGrid(store *palette.Store) *fyne.Container {
	grid := container.NewGridWithColumns(4)
	for _, get := range []func(uint8) palette.Palette{store.BG, store.OBJ} {
		for i := uint8(0); i < 8; i++ {
			pal := get(i)
			row := container.NewHBox()
			for _, c := range pal.Colors {
				r, g, b := uint8(c>>16), uint8(c>>8), uint8(c)
				rect := canvas.NewRectangle(color.RGBA{R: r, G: g, B: b, A: 0xFF})
				rect.SetMinSize(fyne.NewSize(32, 32))
				row.Add(rect)
			}
			grid.Add(row)
		}
	}
	return grid
}

func expansionPlot() *canvas.Raster {
	p := plot.New()
	p.Title.Text = "5-to-8 bit channel expansion"
	p.X.Label.Text = "RGB555 channel value"
	p.Y.Label.Text = "8-bit channel value"

	points := make(plotter.XYs, 32)
	for v := 0; v < 32; v++ {
		points[v].X = float64(v)
		points[v].Y = float64((v*255 + 15) / 31)
	}
	line, err := plotter.NewLine(points)
	if err != nil {
		panic(err)
	}
	p.Add(line)

	img := image.NewRGBA(image.Rect(0, 0, 480, 360))
	c := vgimg.NewWith(vgimg.UseImage(img))
	p.Draw(draw.New(c))

	raster := canvas.NewRasterFromImage(c.Image())
	raster.ScaleMode = canvas.ImageScalePixels
	raster.SetMinSize(fyne.NewSize(480, 360))
	return raster
}

func main() {
	checksum := flag.Uint("checksum", 0, "header checksum to resolve the DMG compatibility palette for")
	cgb := flag.Bool("cgb", true, "show CGB palette RAM instead of the DMG compatibility table")
	flag.Parse()

	store := palette.New(*cgb, uint8(*checksum))

	a := app.New()
	w := a.NewWindow(fmt.Sprintf("paletteviewer (checksum %#02x)", uint8(*checksum)))

	content := container.NewVBox(swatchGrid(store), expansionPlot())
	w.SetContent(content)
	w.Resize(fyne.NewSize(640, 720))
	w.ShowAndRun()
}
