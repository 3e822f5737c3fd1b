package set

// Set formalizes set semantics for comparable values.
type Set[T comparable] map[T]struct{}

// New creates a new [Set] from the given values.
// The returned [Set] will have no values if none are given.
func New[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

func (s Set[T]) Add(val T, others ...T) Set[T] {
	if s == nil {
		s = Set[T]{}
	}
	s[val] = struct{}{}
	for _, v := range others {
		s[v] = struct{}{}
	}
	return s
}

func (s Set[T]) Has(val T) bool {
	_, ok := s[val]
	return ok
}

// Common returns the values from vals that are present in the [Set], in the order they appear in vals.
// Each value is reported at most once.
func (s Set[T]) Common(vals []T) []T {
	var (
		common []T
		seen   = Set[T]{}
	)
	for _, v := range vals {
		if s.Has(v) && !seen.Has(v) {
			seen.Add(v)
			common = append(common, v)
		}
	}
	return common
}

// SubsetOf determines if every value in the [Set] is also present in other.
// An empty [Set] is a subset of everything.
func (s Set[T]) SubsetOf(other Set[T]) bool {
	for v := range s {
		if !other.Has(v) {
			return false
		}
	}
	return true
}

// Equal determines if both sets contain exactly the same values.
func (s Set[T]) Equal(other Set[T]) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}
