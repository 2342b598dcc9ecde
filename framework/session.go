package framework

import (
	"fmt"
	"io"
)

type sessionState int

const (
	sessionIdle sessionState = iota
	sessionRunning
	sessionFinalized
)

// Session collects results over any number of Run calls and decides the exit status once.
type Session struct {
	state    sessionState
	results  Results
	exitCode int
	output   io.Writer
	exit     func(int)
}

// NewSession creates a Session that writes its failure summary to output and passes the exit
// status to exit. Either may be nil. The command passes os.Stderr and os.Exit.
func NewSession(output io.Writer, exit func(int)) *Session {
	return &Session{output: output, exit: exit}
}

// Run is the package-level Run, with the results added to the session.
func (s *Session) Run(filter Filter, testLogger TestLogger, action func(*Context)) Results {
	if s.state == sessionFinalized {
		panic("framework: Run called on a finalized session")
	}
	s.state = sessionRunning
	results := Run(filter, testLogger, action)
	s.results.add(results)
	return results
}

func (s *Session) Results() Results {
	return s.results
}

func (s *Session) Finalized() bool {
	return s.state == sessionFinalized
}

// Finalize returns 1 if any test in the session failed, otherwise 0. The first call prints
// the failure count and calls the exit function; later calls only return the same status.
func (s *Session) Finalize() int {
	if s.state == sessionFinalized {
		return s.exitCode
	}
	s.state = sessionFinalized
	if n := s.results.FailureCount(); n > 0 {
		s.exitCode = 1
		if s.output != nil {
			fmt.Fprintf(s.output, "%d unit tests failed. Terminate\n", n)
		}
	}
	if s.exit != nil {
		s.exit(s.exitCode)
	}
	return s.exitCode
}
