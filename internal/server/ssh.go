package server

import (
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/gliderlabs/ssh"

	"isoatlas/internal/atlas"
	"isoatlas/internal/preview"
)

// SSHServer serves an interactive atlas browser over SSH: one sprite per
// screen, stepped with the arrow keys.
type SSHServer struct {
	atlas   *atlas.Atlas
	addr    string
	hostKey string
}

// NewSSHServer creates a new SSH server bound to the given address.
func NewSSHServer(addr, hostKey string, a *atlas.Atlas) *SSHServer {
	return &SSHServer{
		atlas:   a,
		addr:    addr,
		hostKey: hostKey,
	}
}

// Start begins listening for SSH connections.
func (s *SSHServer) Start() error {
	server := &ssh.Server{
		Addr: s.addr,
		Handler: func(sess ssh.Session) {
			s.handleSession(sess)
		},
	}

	if err := server.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	log.Printf("Atlas browser listening on %s", s.addr)
	return server.ListenAndServe()
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	_, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	log.Printf("Viewer connected: %s", sess.User())
	defer log.Printf("Viewer disconnected: %s", sess.User())

	io.WriteString(sess, preview.EnableAltScreen())
	io.WriteString(sess, preview.HideCursor())
	defer func() {
		io.WriteString(sess, preview.ShowCursor())
		io.WriteString(sess, preview.DisableAltScreen())
	}()

	offset := 0
	var offsetMu sync.Mutex
	s.draw(sess, offset)

	// Redraw on window resize.
	go func() {
		for range winCh {
			offsetMu.Lock()
			o := offset
			offsetMu.Unlock()
			s.draw(sess, o)
		}
	}()

	buf := make([]byte, 64)
	for {
		n, err := sess.Read(buf)
		if err != nil {
			return
		}
		step, quit := parseInput(buf[:n])
		if quit {
			return
		}
		if step != 0 {
			offsetMu.Lock()
			offset = clamp(offset+step, 0, atlas.NumSprites-1)
			o := offset
			offsetMu.Unlock()
			s.draw(sess, o)
		}
	}
}

func (s *SSHServer) draw(w io.Writer, offset int) {
	r := s.atlas.RectOf(offset)

	var kind string
	switch {
	case s.atlas.IsOpaque(offset):
		kind = "opaque"
	case s.atlas.IsTransparent(offset):
		kind = "transparent"
	default:
		kind = "translucent"
	}

	io.WriteString(w, preview.ClearScreen())
	io.WriteString(w, preview.MoveTo(1, 1))
	io.WriteString(w, preview.Render(s.atlas.Img, r))
	fmt.Fprintf(w, "sprite %d/%d  cell %dx%d at (%d,%d)  %s\r\n",
		offset, atlas.NumSprites-1, r.W, r.H, r.X, r.Y, kind)
	io.WriteString(w, "arrows/hjkl: step sprite (up/down = one row)  q: quit\r\n")
}

// parseInput converts raw session bytes into an offset step. Left/right
// move one sprite, up/down move one atlas row.
func parseInput(data []byte) (step int, quit bool) {
	i := 0
	for i < len(data) {
		if i+2 < len(data) && data[i] == 0x1b && data[i+1] == '[' {
			switch data[i+2] {
			case 'A':
				step -= atlas.SpritesPerRow
			case 'B':
				step += atlas.SpritesPerRow
			case 'C':
				step++
			case 'D':
				step--
			}
			i += 3
			continue
		}
		switch data[i] {
		case 'k', 'K':
			step -= atlas.SpritesPerRow
		case 'j', 'J':
			step += atlas.SpritesPerRow
		case 'l', 'L':
			step++
		case 'h', 'H':
			step--
		case 'q', 'Q', 3: // Ctrl-C
			return 0, true
		}
		i++
	}
	return step, false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
