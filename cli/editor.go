package cli

const (
	// CR terminates a command line. LF is not a terminator and is kept
	// as line content.
	CR = '\r'
	// Backspace erases the last byte of the line being typed.
	Backspace = '\b'
)

// State of the line editor.
type State int

const (
	// Idle means the line buffer is empty.
	Idle State = iota
	// Accumulating means at least one byte is buffered.
	Accumulating
)

func (s State) String() string {
	if s == Accumulating {
		return "accumulating"
	}
	return "idle"
}

// Event is what a single input byte did to the editor.
type Event int

const (
	// EventAppended: the byte was stored.
	EventAppended Event = iota
	// EventErased: a backspace removed the last stored byte.
	EventErased
	// EventIgnored: a backspace arrived with an empty line.
	EventIgnored
	// EventDropped: the line buffer was full and the byte was discarded.
	EventDropped
	// EventLine: a carriage return completed the line. Line returns it
	// until Reset is called.
	EventLine
)

func (e Event) String() string {
	switch e {
	case EventAppended:
		return "appended"
	case EventErased:
		return "erased"
	case EventIgnored:
		return "ignored"
	case EventDropped:
		return "dropped"
	case EventLine:
		return "line"
	default:
		return "unknown"
	}
}

// Editor assembles input bytes into command lines in a buffer of fixed
// capacity. It is not safe for concurrent use; the CLI worker owns it.
type Editor struct {
	buf []byte
	pos int
}

// NewEditor allocates an editor whose line holds at most capacity bytes.
func NewEditor(capacity int) *Editor {
	return &Editor{buf: make([]byte, capacity)}
}

// Feed applies one input byte.
func (e *Editor) Feed(b byte) Event {
	switch b {
	case CR:
		return EventLine
	case Backspace:
		if e.pos == 0 {
			return EventIgnored
		}
		e.pos--
		e.buf[e.pos] = 0
		return EventErased
	default:
		if e.pos >= len(e.buf) {
			return EventDropped
		}
		e.buf[e.pos] = b
		e.pos++
		return EventAppended
	}
}

// Line returns the bytes typed so far. It aliases the editor's buffer and
// is only valid until the next Feed or Reset.
func (e *Editor) Line() []byte {
	return e.buf[:e.pos]
}

// Reset zeroes the buffer and returns to Idle.
func (e *Editor) Reset() {
	clear(e.buf)
	e.pos = 0
}

func (e *Editor) State() State {
	if e.pos == 0 {
		return Idle
	}
	return Accumulating
}

func (e *Editor) Len() int { return e.pos }

func (e *Editor) Cap() int { return len(e.buf) }
