package ai

import (
	"context"
	"iter"
	"sync"
)

// Stream yields the fragments of a streamed reply.
//
//	for s.Next() {
//		render(s.Text())
//	}
//	if err := s.Err(); err != nil { ... }
//
// Next, Text, Err and Close must be called from the consuming goroutine. To
// stop a stream from elsewhere, cancel the context it was started with.
type Stream struct {
	next func() (string, error, bool)
	stop func()

	text string
	err  error
	done bool

	closeOnce sync.Once
}

// NewStream wraps a fragment sequence. cancel, when non-nil, is called on
// Close so the outbound request is aborted along with the iteration.
func NewStream(seq iter.Seq2[string, error], cancel context.CancelFunc) *Stream {
	next, stop := iter.Pull2(seq)
	return &Stream{
		next: next,
		stop: func() {
			stop()
			if cancel != nil {
				cancel()
			}
		},
	}
}

// ErrStream returns a stream that fails on the first Next.
func ErrStream(err error) *Stream {
	return NewStream(func(yield func(string, error) bool) {
		yield("", err)
	}, nil)
}

// Next advances to the next fragment. It returns false once the provider ends
// the turn, on error, or after Close.
func (s *Stream) Next() bool {
	if s.done {
		return false
	}
	text, err, ok := s.next()
	if !ok {
		s.Close()
		return false
	}
	if err != nil {
		s.err = err
		s.Close()
		return false
	}
	s.text = text
	return true
}

func (s *Stream) Text() string {
	return s.text
}

func (s *Stream) Err() error {
	return s.err
}

// Close stops the stream. Safe to call more than once.
func (s *Stream) Close() {
	s.closeOnce.Do(func() {
		s.done = true
		s.stop()
	})
}
