package display

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"golang.org/x/image/draw"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1 << 16,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wsClient is one connected viewer. Send is buffered so a slow client
// drops frames instead of blocking the broadcaster.
type wsClient struct {
	conn *websocket.Conn
	send chan []byte
}

func (c *wsClient) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
			return
		}
	}
}

func (c *wsClient) readPump(unregister chan<- *wsClient) {
	defer func() { unregister <- c }()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// WebSocketHub is an io.Display that streams every presented frame,
// PNG-encoded and upscaled, to all connected browsers.
type WebSocketHub struct {
	width, height int
	scale         int

	mu       sync.Mutex
	clients  map[*wsClient]bool
	register chan *wsClient
	unreg    chan *wsClient
}

// NewWebSocketHub builds a hub for a width x height surface, presented
// upscaled by scale. Call Serve to mount the upgrade handler and start
// the broadcast loop.
func NewWebSocketHub(width, height, scale int) *WebSocketHub {
	h := &WebSocketHub{
		width:    width,
		height:   height,
		scale:    scale,
		clients:  make(map[*wsClient]bool),
		register: make(chan *wsClient),
		unreg:    make(chan *wsClient),
	}
	go h.run()
	return h
}

func (h *WebSocketHub) run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()
		case c := <-h.unreg:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
		}
	}
}

// Serve upgrades incoming HTTP requests to websocket connections and
// registers them as frame viewers.
func (h *WebSocketHub) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("display: websocket upgrade failed: %v", err)
		return
	}
	c := &wsClient{conn: conn, send: make(chan []byte, 4)}
	h.register <- c
	go c.writePump()
	go c.readPump(h.unreg)
}

func (h *WebSocketHub) Width() int  { return h.width }
func (h *WebSocketHub) Height() int { return h.height }

// Present converts frame to an RGBA image, scales it with nearest
// neighbour filtering, PNG-encodes it and fans it out to every
// connected client. Slow clients have frames dropped, never block the
// PPU's presentation call.
func (h *WebSocketHub) Present(frame [][]uint32) {
	src := image.NewRGBA(image.Rect(0, 0, h.width, h.height))
	for y := 0; y < h.height && y < len(frame); y++ {
		row := frame[y]
		for x := 0; x < h.width && x < len(row); x++ {
			c := row[x]
			src.Set(x, y, color.RGBA{
				R: byte(c >> 16),
				G: byte(c >> 8),
				B: byte(c),
				A: 0xFF,
			})
		}
	}

	dst := src
	if h.scale > 1 {
		scaled := image.NewRGBA(image.Rect(0, 0, h.width*h.scale, h.height*h.scale))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), src, src.Bounds(), draw.Src, nil)
		dst = scaled
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		log.Printf("display: png encode failed: %v", err)
		return
	}
	payload := buf.Bytes()

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			// client is behind, drop this frame for it
		}
	}
}
