package ir

import "fmt"

// Temp represents a fresh abstract register.  Temps are identity-equal and are
// never reused across construction: their lifetime is the whole compilation
// unit.
type Temp struct {
	// The unique number of the temporary.
	Num int
}

func (t *Temp) String() string {
	return fmt.Sprintf("t%d", t.Num)
}

// Label represents a symbolic code location.  Labels are either anonymous
// (auto-numbered) or named (eg. `ClassName@methodName` for method entry
// points).  Labels are value-equal iff identity-equal.
type Label struct {
	// The printable name of the label.
	Name string
}

func (l *Label) String() string {
	return l.Name
}

// -----------------------------------------------------------------------------

// Pool produces fresh temporaries and labels for one compilation unit.  It
// must not be shared across parallel translation units: translation is
// single-threaded and the counters are unsynchronized.
type Pool struct {
	tempCount  int
	labelCount int

	// named holds the interned labels by printable name so that two requests
	// for the same name return the same label identity.
	named map[string]*Label
}

// NewPool creates a new empty temp and label pool.
func NewPool() *Pool {
	return &Pool{named: make(map[string]*Label)}
}

// NewTemp returns a fresh anonymous temporary.
func (p *Pool) NewTemp() *Temp {
	p.tempCount++
	return &Temp{Num: p.tempCount}
}

// NewLabel returns a fresh anonymous label.
func (p *Pool) NewLabel() *Label {
	p.labelCount++
	return &Label{Name: fmt.Sprintf("L%d", p.labelCount)}
}

// NamedLabel returns the interned label with the given printable name.
func (p *Pool) NamedLabel(name string) *Label {
	if l, ok := p.named[name]; ok {
		return l
	}

	l := &Label{Name: name}
	p.named[name] = l
	return l
}
