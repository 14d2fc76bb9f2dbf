package draw

import (
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Control sequences written around a game session.
const (
	clearScreen = "\033[H\033[2J"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"

	// Any-event mouse tracking with SGR extended coordinates, so the pointer
	// is reported on every move and not only on clicks.
	enableMouse  = "\033[?1003h\033[?1006h"
	disableMouse = "\033[?1003l\033[?1006l"
)

// EnterGame prepares the terminal for play: hidden cursor, mouse reporting
// on, empty screen.
func EnterGame(w io.Writer) {
	io.WriteString(w, hideCursor+enableMouse+clearScreen)
}

// LeaveGame hands the terminal back in the state EnterGame found it.
func LeaveGame(w io.Writer) {
	io.WriteString(w, clearScreen+disableMouse+showCursor)
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	io.WriteString(w, clearScreen)
}

// moveTo returns the cursor position sequence for a 1-based (col, row).
func moveTo(col, row int) string {
	return "\033[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}

// maxChunkSize keeps each write under a typical MTU so frames stream
// smoothly over SSH.
const maxChunkSize = 1400

// writeChunks writes data to w in pieces of at most maxChunkSize bytes.
func writeChunks(w io.Writer, data string) error {
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := io.WriteString(w, data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// ChunkWriter collects one frame of output (canvas cells, HUD text, clears)
// and sends it in MTU-sized writes on Flush. Text positions are canvas
// cells; the centering offset is added here.
type ChunkWriter struct {
	out    io.Writer
	frame  strings.Builder
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter that writes frames to w.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{out: w, offCol: offsetCol, offRow: offsetRow}
}

// SetOffset updates the centering offset after a resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// Write appends raw bytes, so a Canvas can Render into the frame.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	return cw.frame.Write(p)
}

// WriteString appends raw text.
func (cw *ChunkWriter) WriteString(s string) {
	cw.frame.WriteString(s)
}

// WriteAt places s at the 1-based canvas cell (col, row).
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.frame.WriteString(moveTo(col+cw.offCol, row+cw.offRow))
	cw.frame.WriteString(s)
}

// ClearScreen queues a full terminal clear at this point in the frame.
func (cw *ChunkWriter) ClearScreen() {
	cw.frame.WriteString(clearScreen)
}

// Flush sends the frame and starts a new one.
func (cw *ChunkWriter) Flush() error {
	data := cw.frame.String()
	cw.frame.Reset()
	return writeChunks(cw.out, data)
}

var _ io.Writer = (*ChunkWriter)(nil)

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// TerminalSizeRawWith returns actual terminal dimensions using the provided size function.
func TerminalSizeRawWith(sizeFunc TermSizeFunc) (width, height int, err error) {
	return sizeFunc()
}
