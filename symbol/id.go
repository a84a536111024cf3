package symbol

import "sync/atomic"

// An ID is a canonical handle for an interned symbol.  IDs are only
// meaningful relative to the Table that produced them.
type ID uint64

// IDGen is a function that generates unique IDs.
type IDGen interface {
	// NewID returns a unique ID.  It is not specified at the interface level
	// what IDs are returned, only that they are unique.
	NewID() ID
}

// NewIDGen returns a basic IDGen that will generate unique ids greater than
// min.  The returned IDGen will not produce the value min.
func NewIDGen(min ID) IDGen {
	return &gen{lastid: uint64(min)}
}

type gen struct {
	lastid uint64
}

var _ IDGen = (*gen)(nil)

func (g *gen) NewID() ID {
	return ID(atomic.AddUint64(&g.lastid, 1))
}

// String is equivalent to calling String(id, DefaultGlobalTable).
func (id ID) String() string {
	return String(id, DefaultGlobalTable)
}
