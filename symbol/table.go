package symbol

import (
	"fmt"
	"sync"
)

// DefaultGlobalTable is the default symbol table.  It should be used by
// processes that want a single shared view of interned symbols.  Callers
// that need isolation can create their own table with NewTable.
var DefaultGlobalTable Table = NewTable()

// Intern uses DefaultGlobalTable to intern s and returns its ID.
func Intern(s string) ID {
	return DefaultGlobalTable.Intern(s)
}

// Table maps symbol IDs to strings.
type Table interface {
	// Len returns the number of symbols interned in the table.
	Len() int
	// Intern inserts the given symbol into the table if it is not present and
	// returns its ID.
	Intern(symbol string) ID
	// Peek retrieves the ID of a symbol without automatically interning it.
	// Peek returns true iff the symbol has been interned into the table.
	Peek(symbol string) (ID, bool)
	// Symbol returns the symbol associated with id.
	Symbol(id ID) (string, bool)
}

// String returns the result of table.Symbol(id) if id is present in table.
// String otherwise returns a diagnostic string describing id.
func String(id ID, table Table) string {
	s, ok := table.Symbol(id)
	if !ok {
		return fmt.Sprintf("#<SYMBOL %#x>", uint64(id))
	}
	return s
}

// NewTable initializes and returns an empty Table.
func NewTable() Table {
	return newTable()
}

// Namespace interns names qualified under a fixed namespace symbol.  The
// qualified form of name under namespace ns is the symbol "ns:name".
type Namespace struct {
	t  Table
	ns string
}

// NewNamespace returns a Namespace that qualifies names under ns using t.
// The namespace symbol itself is interned into t.
func NewNamespace(t Table, ns string) *Namespace {
	t.Intern(ns)
	return &Namespace{t: t, ns: ns}
}

// Name returns the name of the namespace.
func (n *Namespace) Name() string {
	return n.ns
}

// Intern interns the qualified form of name and returns its ID.
func (n *Namespace) Intern(name string) ID {
	return n.t.Intern(n.ns + ":" + name)
}

// Peek returns the ID of the qualified form of name without interning it.
func (n *Namespace) Peek(name string) (ID, bool) {
	return n.t.Peek(n.ns + ":" + name)
}

type table struct {
	sync sync.RWMutex
	g    IDGen
	i    map[ID]string
	s    map[string]ID
}

var _ Table = (*table)(nil)

func newTable() *table {
	return &table{
		g: NewIDGen(0),
		i: make(map[ID]string),
		s: make(map[string]ID),
	}
}

// Len implements the Table interface
func (t *table) Len() int {
	t.sync.RLock()
	defer t.sync.RUnlock()
	return len(t.s)
}

// Intern implements the Table interface
func (t *table) Intern(s string) ID {
	t.sync.Lock()
	defer t.sync.Unlock()
	if id, ok := t.s[s]; ok {
		return id
	}
	id := t.g.NewID()
	t.s[s] = id
	t.i[id] = s
	return id
}

// Peek implements the Table interface
func (t *table) Peek(s string) (ID, bool) {
	t.sync.RLock()
	defer t.sync.RUnlock()
	id, ok := t.s[s]
	return id, ok
}

// Symbol implements the Table interface
func (t *table) Symbol(id ID) (string, bool) {
	t.sync.RLock()
	defer t.sync.RUnlock()
	s, ok := t.i[id]
	return s, ok
}
