// Package preview streams rendered frames to browser clients over a
// websocket, so the matrix can be watched without hardware attached.
package preview

import (
	"image"
	"image/color"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/coreman2200/funtimes-scaryeyes/internal/display"
)

// Server broadcasts frames to connected websocket clients. It
// implements display.Renderer so the show can tee into it alongside
// the hardware sink.
type Server struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
	width    int
	height   int
	contrast uint8
	frameID  uint64
	log      zerolog.Logger
}

var _ display.Renderer = (*Server)(nil)

type frameMsg struct {
	ID       uint64 `json:"id"`
	W        int    `json:"w"`
	H        int    `json:"h"`
	Contrast uint8  `json:"contrast"`
	Pixels   []int  `json:"pixels"` // row-major, 1 = lit
}

func NewServer(width, height int, log zerolog.Logger) *Server {
	return &Server{
		clients:  map[*websocket.Conn]bool{},
		width:    width,
		height:   height,
		contrast: 255,
		log:      log,
	}
}

// Draw encodes the frame and pushes it to every client. Slow or dead
// clients are dropped; a preview never fails the show.
func (s *Server) Draw(img image.Image) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frameID++
	if len(s.clients) == 0 {
		return nil
	}
	msg := frameMsg{
		ID:       s.frameID,
		W:        s.width,
		H:        s.height,
		Contrast: s.contrast,
		Pixels:   make([]int, s.width*s.height),
	}
	min := img.Bounds().Min
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			c := color.GrayModel.Convert(img.At(min.X+x, min.Y+y)).(color.Gray)
			if c.Y >= 0x80 {
				msg.Pixels[y*s.width+x] = 1
			}
		}
	}
	for conn := range s.clients {
		if err := conn.WriteJSON(msg); err != nil {
			s.log.Debug().Err(err).Msg("dropping preview client")
			delete(s.clients, conn)
			conn.Close()
		}
	}
	return nil
}

func (s *Server) SetContrast(level uint8) error {
	s.mu.Lock()
	s.contrast = level
	s.mu.Unlock()
	return nil
}

func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		conn.Close()
	}
	s.clients = map[*websocket.Conn]bool{}
	return nil
}

// ClientCount reports the number of connected preview clients.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()
	s.log.Info().Str("remote", conn.RemoteAddr().String()).Msg("preview client connected")

	// Read pump only to observe the close.
	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"ok":true}`))
}
