package region

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"regexp"
	"slices"
	"strings"
)

var (
	// ErrNilSequence is returned by [Region.AddAll] when the input sequence
	// is nil. Individual rejected identifiers never produce an error.
	ErrNilSequence = errors.New("package sequence must not be nil")

	// ErrInvalidIdentifier is returned by [Validate] when an identifier is
	// empty or does not match the package-name grammar.
	ErrInvalidIdentifier = errors.New("invalid package identifier")

	// ErrReservedWord is returned by [Validate] when a dot-delimited segment
	// of an identifier equals a reserved Java keyword.
	ErrReservedWord = errors.New("identifier segment is a reserved word")
)

// validPackage is the package-name grammar: the first segment is lowercase
// letters only, subsequent segments start with a letter or underscore
// followed by letters, digits, or underscores.
var validPackage = regexp.MustCompile(`^[a-z]+(\.[a-zA-Z_][a-zA-Z0-9_]*)*$`)

// Validate reports why an identifier would be rejected by [Region.Add],
// or nil if it is well formed. It checks the grammar and the reserved-word
// list but not chain membership, which depends on the region queried.
func Validate(api string) error {
	if api == "" || !validPackage.MatchString(api) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, api)
	}
	for segment := range strings.SplitSeq(api, ".") {
		if _, reserved := reservedWords[segment]; reserved {
			return fmt.Errorf("%w: %q in %q", ErrReservedWord, segment, api)
		}
	}
	return nil
}

// Valid reports whether an identifier is syntactically acceptable:
// it matches the package-name grammar and contains no reserved word.
func Valid(api string) bool { return Validate(api) == nil }

// Region is a named set of exported package identifiers with an optional
// parent region it extends. Name and parent are fixed at creation; only the
// entry set is mutable. Regions are created through [Collection.Create],
// never directly, which keeps the parent chain acyclic.
//
// Region is not safe for concurrent use.
type Region struct {
	name   string
	parent *Region
	apis   map[string]struct{}
}

func newRegion(name string, parent *Region) *Region {
	return &Region{
		name:   name,
		parent: parent,
		apis:   make(map[string]struct{}),
	}
}

// Name returns the name identifying this region.
func (r *Region) Name() string { return r.name }

// Parent returns the region this one extends, or nil for the first region
// in the chain.
func (r *Region) Parent() *Region { return r.parent }

// Add inserts a package identifier into this region's own entries.
// It reports false, without error, when the identifier is empty, fails the
// package-name grammar, contains a reserved word segment, or is already
// present anywhere in the ancestor chain. This silent filtering is
// deliberate: region declarations are treated as best-effort package lists,
// not strict input.
func (r *Region) Add(api string) bool {
	if !Valid(api) {
		return false
	}
	if r.Contains(api) {
		return false
	}
	r.apis[api] = struct{}{}
	return true
}

// AddAll applies [Region.Add] to every identifier in the sequence, in order.
// Rejected identifiers are dropped silently. Returns ErrNilSequence if the
// sequence itself is nil.
func (r *Region) AddAll(apis iter.Seq[string]) error {
	if apis == nil {
		return ErrNilSequence
	}
	for api := range apis {
		r.Add(api)
	}
	return nil
}

// Contains reports whether the identifier is present in this region or in
// any ancestor. An empty identifier is never contained.
func (r *Region) Contains(api string) bool {
	if api == "" {
		return false
	}
	if _, ok := r.apis[api]; ok {
		return true
	}
	if r.parent != nil {
		return r.parent.Contains(api)
	}
	return false
}

// Remove deletes the identifier from the nearest region in the chain that
// holds it and reports whether a deletion happened. Note that this may
// mutate an ancestor: removing "from" a region removes from whichever
// region actually declared the identifier.
func (r *Region) Remove(api string) bool {
	if api == "" {
		return false
	}
	if _, ok := r.apis[api]; ok {
		delete(r.apis, api)
		return true
	}
	if r.parent != nil {
		return r.parent.Remove(api)
	}
	return false
}

// IsEmpty reports whether this region and every ancestor hold no entries.
func (r *Region) IsEmpty() bool {
	if len(r.apis) > 0 {
		return false
	}
	if r.parent != nil {
		return r.parent.IsEmpty()
	}
	return true
}

// entrySeqs returns one live entry sequence per region in the chain,
// nearest first.
func (r *Region) entrySeqs() []iter.Seq[string] {
	var seqs []iter.Seq[string]
	for reg := r; reg != nil; reg = reg.parent {
		seqs = append(seqs, maps.Keys(reg.apis))
	}
	return seqs
}

// All returns the region's effective membership as a lazy sequence: this
// region's own entries first, then each ancestor's, nearest first. Every
// range over the sequence is a fresh traversal of live membership, so
// entries added or removed between traversals are picked up. Order within
// a single region's entries is unspecified.
func (r *Region) All() iter.Seq[string] {
	return Join(r.entrySeqs()...)
}

// Iterator returns a pull-style iterator over the same traversal as
// [Region.All]. Callers that abandon it before exhaustion should call Stop.
func (r *Region) Iterator() *Iterator[string] {
	return NewIterator(r.entrySeqs()...)
}

// Exports returns this region's own entries, excluding inherited ones,
// sorted for deterministic output. This is the view serialized to the wire
// format.
func (r *Region) Exports() []string {
	out := make([]string, 0, len(r.apis))
	for api := range r.apis {
		out = append(out, api)
	}
	slices.Sort(out)
	return out
}

// String renders a multi-line description of the region and its ancestry
// for diagnostics. The format is not stable.
func (r *Region) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Region %q", r.name)
	if r.parent != nil {
		b.WriteString(" inherits from\n")
		b.WriteString(r.parent.String())
	}
	for _, api := range r.Exports() {
		fmt.Fprintf(&b, "\n * %s", api)
	}
	return b.String()
}
