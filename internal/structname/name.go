package structname

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Framework-wide separator tokens. Task names join their halves with
// TaskSep, code references with ImportSep. Segments within a half are
// always joined with SubSep.
const (
	TaskSep   = "::"
	ImportSep = ":"
	SubSep    = "."
)

// InstanceMark prefixes the UUID segment appended by Instance.
const InstanceMark = "$gen$"

// Name is an immutable two-part structured name. The zero value renders as
// the bare separator and is not useful; construct instances with New.
type Name struct {
	head []string
	tail []string
	sep  string
	sub  string
}

// Option customises a Name at construction time.
type Option func(*Name)

// WithSeparator overrides the separator rendered between head and tail.
func WithSeparator(sep string) Option {
	return func(n *Name) { n.sep = sep }
}

// WithSubSeparator overrides the separator rendered between segments.
func WithSubSeparator(sub string) Option {
	return func(n *Name) { n.sub = sub }
}

// New builds a Name from head and tail segment paths. Both slices are
// copied; callers may reuse their arguments afterwards.
func New(head, tail []string, opts ...Option) Name {
	n := Name{
		head: slices.Clone(head),
		tail: slices.Clone(tail),
		sep:  TaskSep,
		sub:  SubSep,
	}
	for _, opt := range opts {
		opt(&n)
	}
	return n
}

// Head returns a copy of the head segment path.
func (n Name) Head() []string { return slices.Clone(n.head) }

// Tail returns a copy of the tail segment path.
func (n Name) Tail() []string { return slices.Clone(n.tail) }

// Separator returns the separator rendered between the two halves.
func (n Name) Separator() string { return n.sep }

// HeadString returns the head path joined with the sub-separator.
func (n Name) HeadString() string { return strings.Join(n.head, n.sub) }

// TailString returns the tail path joined with the sub-separator.
func (n Name) TailString() string { return strings.Join(n.tail, n.sub) }

// String renders the canonical form: head, separator, tail.
func (n Name) String() string {
	return n.HeadString() + n.sep + n.TailString()
}

// Equal reports whether two names render to the same canonical string.
func (n Name) Equal(other Name) bool {
	return n.String() == other.String()
}

// Rebuild returns a new Name with the given segment paths, preserving the
// receiver's separators. This is the only sanctioned way to derive a
// modified name.
func (n Name) Rebuild(head, tail []string) Name {
	out := n
	out.head = slices.Clone(head)
	out.tail = slices.Clone(tail)
	return out
}

// Instance returns a copy of the name with a unique generation marker and
// UUID appended to the tail, distinguishing an instantiated name from its
// abstract original.
func (n Name) Instance() Name {
	tail := append(n.Tail(), InstanceMark, uuid.NewString())
	return n.Rebuild(n.head, tail)
}
