// Command timingchart drives a headless PPU for one frame and plots
// the STAT mode against scanline number, then offers to save the
// chart as a PNG or copy it to the clipboard.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/sqweek/dialog"
	"golang.design/x/clipboard"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/nullpixel/gbcore/internal/host"
	"github.com/nullpixel/gbcore/internal/ppu"
	"github.com/nullpixel/gbcore/internal/types"
)

func recordFrame(core *ppu.PPU) plotter.XYs {
	points := make(plotter.XYs, 0, 154)
	for line := 0; line < 154; line++ {
		core.Tick(456)
		points = append(points, plotter.XY{X: float64(core.LY()), Y: float64(core.Mode())})
	}
	return points
}

func renderChart(points plotter.XYs) image.Image {
	p := plot.New()
	p.Title.Text = "STAT mode by scanline"
	p.X.Label.Text = "LY"
	p.Y.Label.Text = "Mode"

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		panic(err)
	}
	p.Add(scatter)

	img := image.NewRGBA(image.Rect(0, 0, 800, 400))
	c := vgimg.NewWith(vgimg.UseImage(img))
	p.Draw(draw.New(c))
	return c.Image()
}

func main() {
	save := flag.Bool("save", false, "prompt for a file to save the chart to")
	copyToClipboard := flag.Bool("clipboard", false, "copy the chart image to the clipboard")
	flag.Parse()

	h := host.NewHarness(make([]byte, 0x150), nil)
	h.WriteRegister(types.LCDC, 0x91)
	core := ppu.New(h, nil)

	points := recordFrame(core)
	img := renderChart(points)

	if *save {
		filename, err := dialog.File().Filter("PNG Image", "png").Title("Save timing chart").Save()
		if err != nil {
			fmt.Fprintln(os.Stderr, "timingchart: save cancelled:", err)
		} else {
			if len(filename) < 4 || filename[len(filename)-4:] != ".png" {
				filename += ".png"
			}
			f, err := os.Create(filename)
			if err != nil {
				fmt.Fprintln(os.Stderr, "timingchart:", err)
			} else {
				defer f.Close()
				png.Encode(f, img)
			}
		}
	}

	if *copyToClipboard {
		if err := clipboard.Init(); err != nil {
			fmt.Fprintln(os.Stderr, "timingchart: clipboard init:", err)
			return
		}
		var buf bytes.Buffer
		png.Encode(&buf, img)
		clipboard.Write(clipboard.FmtImage, buf.Bytes())
	}
}
