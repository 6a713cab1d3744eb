// Package display holds the presentation surfaces that satisfy
// io.Display: an SDL2 window for local play and a websocket hub for
// streaming frames to a browser.
package display

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// SDLWindow presents frames in a resizable SDL2 window, upscaled with
// nearest-neighbour filtering so pixel art stays crisp.
type SDLWindow struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	width    int
	height   int
	pixels   []byte
}

// NewSDLWindow creates and shows an SDL2 window sized width*scale by
// height*scale, backed by a streaming texture of width x height.
func NewSDLWindow(title string, width, height, scale int) (*SDLWindow, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	win, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width*scale), int32(height*scale),
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	if err := renderer.SetLogicalSize(int32(width), int32(height)); err != nil {
		renderer.Destroy()
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("set logical size: %w", err)
	}
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888, sdl.TEXTUREACCESS_STREAMING, int32(width), int32(height))
	if err != nil {
		renderer.Destroy()
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create texture: %w", err)
	}

	return &SDLWindow{
		window:   win,
		renderer: renderer,
		texture:  texture,
		width:    width,
		height:   height,
		pixels:   make([]byte, width*height*4),
	}, nil
}

func (w *SDLWindow) Width() int  { return w.width }
func (w *SDLWindow) Height() int { return w.height }

// Present blits frame (row-major, 0x00RRGGBB cells) onto the texture
// and shows it. Rows/columns beyond the configured size are ignored.
func (w *SDLWindow) Present(frame [][]uint32) {
	for y := 0; y < w.height && y < len(frame); y++ {
		row := frame[y]
		base := y * w.width * 4
		for x := 0; x < w.width && x < len(row); x++ {
			c := row[x]
			off := base + x*4
			w.pixels[off+0] = byte(c)
			w.pixels[off+1] = byte(c >> 8)
			w.pixels[off+2] = byte(c >> 16)
			w.pixels[off+3] = 0xFF
		}
	}

	if err := w.texture.Update(nil, w.pixels, w.width*4); err != nil {
		return
	}
	w.renderer.SetDrawColor(0, 0, 0, 255)
	w.renderer.Clear()
	w.renderer.Copy(w.texture, nil, nil)
	w.renderer.Present()
}

// PollQuit reports whether an SDL quit event (window close) has been
// posted since the last call. Hosts drive their own event loop; this
// is the minimal hook a run loop needs to exit cleanly.
func (w *SDLWindow) PollQuit() bool {
	for {
		event := sdl.PollEvent()
		if event == nil {
			return false
		}
		if _, ok := event.(*sdl.QuitEvent); ok {
			return true
		}
	}
}

// Close tears down the texture, renderer and window in order.
func (w *SDLWindow) Close() {
	w.texture.Destroy()
	w.renderer.Destroy()
	w.window.Destroy()
	sdl.Quit()
}
