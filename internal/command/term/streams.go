package term

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Stream is a concurrency-safe output for term.messages.
type Stream struct {
	stream io.Writer
	lock   sync.Mutex
}

func NewStream(out io.Writer) *Stream {
	return &Stream{stream: out}
}

func (s *Stream) Printf(format string, a ...any) {
	s.lock.Lock()
	defer s.lock.Unlock()

	fmt.Fprintf(s.stream, format, a...)
}

func (s *Stream) Println(a ...any) {
	s.lock.Lock()
	defer s.lock.Unlock()

	fmt.Fprintln(s.stream, a...)
}

// ErrPrintln prints an error with an "ERROR: " prefix.
// The variadic msg arguments are printed before the error, separated by a
// colon.
func (s *Stream) ErrPrintln(err error, msg ...any) {
	if len(msg) == 0 {
		s.Println(RedHighlight("ERROR:"), err)
		return
	}

	wholeMsg := strings.TrimRight(fmt.Sprintln(msg...), "\n")

	s.Println(RedHighlight("ERROR:"), wholeMsg+":", err)
}

func (s *Stream) Write(p []byte) (n int, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.stream.Write(p)
}
