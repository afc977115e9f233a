package iteratable

// Set is an insertion-ordered set. Members must be comparable values;
// equality is Go value equality. The zero Set is not ready for use, create
// sets with NewSet.
type Set struct {
	order   []interface{}
	members map[interface{}]struct{}
	cursor  int
}

// NewSet creates an empty set with a capacity hint.
func NewSet(capacity int) *Set {
	if capacity < 0 {
		capacity = 0
	}
	return &Set{
		order:   make([]interface{}, 0, capacity),
		members: make(map[interface{}]struct{}, capacity),
	}
}

// Add inserts el into the set. Duplicate inserts are a no-op. It returns
// true if el was not yet a member.
func (s *Set) Add(el interface{}) bool {
	if _, ok := s.members[el]; ok {
		return false
	}
	s.members[el] = struct{}{}
	s.order = append(s.order, el)
	return true
}

// Contains returns true if el is a member of the set.
func (s *Set) Contains(el interface{}) bool {
	if s == nil {
		return false
	}
	_, ok := s.members[el]
	return ok
}

// Remove deletes el from the set, if present.
func (s *Set) Remove(el interface{}) {
	if !s.Contains(el) {
		return
	}
	delete(s.members, el)
	for i, m := range s.order {
		if m == el {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.cursor > len(s.order) {
		s.cursor = len(s.order)
	}
}

// Size returns the number of members.
func (s *Set) Size() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Empty returns true if the set has no members.
func (s *Set) Empty() bool {
	return s.Size() == 0
}

// First returns the earliest-inserted member, or nil for an empty set.
func (s *Set) First() interface{} {
	if s.Size() == 0 {
		return nil
	}
	return s.order[0]
}

// Values returns the members in insertion order. The returned slice is a
// copy.
func (s *Set) Values() []interface{} {
	if s == nil {
		return nil
	}
	vals := make([]interface{}, len(s.order))
	copy(vals, s.order)
	return vals
}

// Each calls f for every member, in insertion order.
func (s *Set) Each(f func(el interface{})) {
	if s == nil {
		return
	}
	for _, el := range s.order {
		f(el)
	}
}

// Copy returns a new set with the same members, in the same order.
func (s *Set) Copy() *Set {
	c := NewSet(s.Size())
	s.Each(func(el interface{}) {
		c.Add(el)
	})
	return c
}

// Equals compares two sets for equal membership, ignoring order.
func (s *Set) Equals(other *Set) bool {
	if s.Size() != other.Size() {
		return false
	}
	for _, el := range s.order {
		if !other.Contains(el) {
			return false
		}
	}
	return true
}

// Union adds all members of other to the receiver.
func (s *Set) Union(other *Set) *Set {
	other.Each(func(el interface{}) {
		s.Add(el)
	})
	return s
}

// Subtract removes all members of other from the receiver.
func (s *Set) Subtract(other *Set) *Set {
	if other.Size() == 0 {
		return s
	}
	kept := s.order[:0]
	for _, el := range s.order {
		if other.Contains(el) {
			delete(s.members, el)
		} else {
			kept = append(kept, el)
		}
	}
	s.order = kept
	return s
}

// Subset returns a new set holding the members for which pred is true,
// preserving order.
func (s *Set) Subset(pred func(el interface{}) bool) *Set {
	r := NewSet(s.Size())
	s.Each(func(el interface{}) {
		if pred(el) {
			r.Add(el)
		}
	})
	return r
}

// IterateOnce resets the set's single iteration cursor. Follow with calls
// to Next and Item:
//
//	S.IterateOnce()
//	for S.Next() {
//	    el := S.Item()
//	    …
//	}
//
// Members added during the iteration are visited, too.
func (s *Set) IterateOnce() {
	s.cursor = 0
}

// Next advances the iteration cursor. It returns false when the iteration
// is exhausted.
func (s *Set) Next() bool {
	if s.cursor >= len(s.order) {
		return false
	}
	s.cursor++
	return true
}

// Item returns the member the cursor currently points at.
func (s *Set) Item() interface{} {
	return s.order[s.cursor-1]
}
