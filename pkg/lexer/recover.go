package lexer

// recoveryState tracks the panic-mode finite-state machine. The lexer starts
// in stateNormal; an INVALID_SYMBOL span moves it to statePanic until a
// synchronization character or end of input brings it back.
type recoveryState int

const (
	stateNormal recoveryState = iota
	statePanic
)

// panicRecover implements the PANIC half of the recovery machine. It runs
// after the error token for an unclaimed span has been emitted: characters
// are discarded one at a time until a synchronization character turns up and
// is itself consumed, or end of input is reached. Spans claimed by a
// sub-scanner (identifier, number, string) never get here — their errors are
// already fully delimited and normal dispatch resumes directly.
//
// Each iteration consumes exactly one character, so the scan keeps its
// progress guarantee on any finite input.
func (l *Lexer) panicRecover() {
	l.state = statePanic
	for l.ch != 0 {
		sync := isSyncChar(l.ch)
		l.readChar()
		if sync {
			break
		}
	}
	l.state = stateNormal
}

// InPanic reports whether the lexer is currently discarding input. Exposed
// for tests; between NextToken calls this is always false.
func (l *Lexer) InPanic() bool { return l.state == statePanic }
