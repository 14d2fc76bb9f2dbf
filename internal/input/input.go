// Package input turns raw terminal bytes into per-frame key and mouse state.
package input

import (
	"bufio"
	"strconv"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Pointer is a mouse position in 1-based terminal cells.
type Pointer struct {
	Col, Row int
}

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Space   bool
	Enter   bool
	Restart bool
	Closed  bool     // The reader hit EOF
	Pointer *Pointer // Latest mouse position this frame, nil if the mouse did not move
	Pressed []byte   // Key bytes this frame, mouse reports excluded
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit    time.Time
	left    time.Time
	right   time.Time
	up      time.Time
	down    time.Time
	space   time.Time
	enter   time.Time
	restart time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch      chan byte
	state   keyState
	pending []byte // Incomplete escape sequence carried to the next frame
	closed  bool
	now     func() time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:  make(chan byte, 256),
		now: time.Now,
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ResetKeyInput forgets held keys so a press that started the game does not
// also act on the first frame of play.
func ResetKeyInput(s *Stream) {
	s.state = keyState{}
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and SGR mouse reports.
// Uses key state persistence to allow detecting simultaneous key combinations.
func ReadInput(s *Stream) Input {
	now := s.now()
	buf := s.pending
	s.pending = nil

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := Input{Closed: s.closed}
	in.Pointer, in.Pressed, s.pending = parse(&s.state, buf, now)

	in.Quit = now.Sub(s.state.quit) < keyHoldDuration
	in.Left = now.Sub(s.state.left) < keyHoldDuration
	in.Right = now.Sub(s.state.right) < keyHoldDuration
	in.Up = now.Sub(s.state.up) < keyHoldDuration
	in.Down = now.Sub(s.state.down) < keyHoldDuration
	in.Space = now.Sub(s.state.space) < keyHoldDuration
	in.Enter = now.Sub(s.state.enter) < keyHoldDuration
	in.Restart = now.Sub(s.state.restart) < keyHoldDuration
	return in
}

// parse walks buf, updating key timestamps. It returns the last mouse
// position seen, the plain key bytes, and any trailing incomplete sequence.
func parse(state *keyState, buf []byte, now time.Time) (*Pointer, []byte, []byte) {
	var ptr *Pointer
	var pressed []byte

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			if i+1 == len(buf) {
				// Lone ESC at the end may be the start of a sequence.
				return ptr, pressed, append([]byte(nil), buf[i:]...)
			}
			if buf[i+1] == '[' {
				if i+2 == len(buf) {
					return ptr, pressed, append([]byte(nil), buf[i:]...)
				}
				switch buf[i+2] {
				case 'A':
					state.up = now
					i += 2
					continue
				case 'B':
					state.down = now
					i += 2
					continue
				case 'C':
					state.right = now
					i += 2
					continue
				case 'D':
					state.left = now
					i += 2
					continue
				case '<':
					p, n, complete := parseSGRMouse(buf[i+3:])
					if !complete {
						return ptr, pressed, append([]byte(nil), buf[i:]...)
					}
					if p != nil {
						ptr = p
					}
					i += 2 + n
					continue
				}
			}
		}

		pressed = append(pressed, b)
		applyByteToState(state, b, now)
	}
	return ptr, pressed, nil
}

// parseSGRMouse parses "b;x;yM" or "b;x;ym" following ESC [ <.
// It returns the position, the bytes consumed, and whether the report was complete.
// Malformed reports are consumed and yield a nil pointer.
func parseSGRMouse(buf []byte) (*Pointer, int, bool) {
	var fields [3]int
	field := 0
	start := 0
	for i, b := range buf {
		switch {
		case b >= '0' && b <= '9':
			continue
		case b == ';' && field < 2:
			n, err := strconv.Atoi(string(buf[start:i]))
			if err != nil {
				return nil, i + 1, true
			}
			fields[field] = n
			field++
			start = i + 1
		case (b == 'M' || b == 'm') && field == 2:
			n, err := strconv.Atoi(string(buf[start:i]))
			if err != nil {
				return nil, i + 1, true
			}
			fields[2] = n
			return &Pointer{Col: fields[1], Row: fields[2]}, i + 1, true
		default:
			return nil, i + 1, true
		}
	}
	return nil, len(buf), false
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		state.quit = now
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'k', 'K':
		state.up = now
	case 's', 'S', 'j', 'J':
		state.down = now
	case 'r', 'R':
		state.restart = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	}
}
