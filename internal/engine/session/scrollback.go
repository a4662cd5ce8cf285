package session

// DefaultScrollback is the number of lines each log pane keeps.
const DefaultScrollback = 5000

// Scrollback is a bounded line buffer that drops the oldest lines first.
type Scrollback struct {
	lines []string
	start int
	size  int
}

// NewScrollback creates a Scrollback holding up to capacity lines.
// A non-positive capacity means DefaultScrollback.
func NewScrollback(capacity int) *Scrollback {
	if capacity <= 0 {
		capacity = DefaultScrollback
	}
	return &Scrollback{lines: make([]string, capacity)}
}

// Append adds lines at the end.
func (s *Scrollback) Append(lines ...string) {
	capacity := len(s.lines)
	for _, line := range lines {
		if s.size < capacity {
			s.lines[(s.start+s.size)%capacity] = line
			s.size++
			continue
		}
		s.lines[s.start] = line
		s.start = (s.start + 1) % capacity
	}
}

// Len returns the number of lines held.
func (s *Scrollback) Len() int {
	return s.size
}

// Tail returns the most recent n lines, oldest first.
func (s *Scrollback) Tail(n int) []string {
	n = max(0, min(n, s.size))
	out := make([]string, n)
	capacity := len(s.lines)
	first := s.start + s.size - n
	for i := range n {
		out[i] = s.lines[(first+i)%capacity]
	}
	return out
}

// Lines returns every line held, oldest first.
func (s *Scrollback) Lines() []string {
	return s.Tail(s.size)
}
