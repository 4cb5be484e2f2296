package activity

import (
	"golang.org/x/exp/slices"
)

type SortOrder string

const (
	SortNone    SortOrder = "none"
	SortCreated SortOrder = "created"
)

func ParseSortOrder(s string) (SortOrder, bool) {
	switch SortOrder(s) {
	case "", SortNone:
		return SortNone, true
	case SortCreated:
		return SortCreated, true
	}

	return "", false
}

// Source supplies the activity list in display order.
type Source interface {
	Load() ([]*Entity, error)
}

type List []*Entity

// Sorted returns a copy of the list ordered by o. The receiver is left
// untouched.
func (l List) Sorted(o SortOrder) List {
	out := make(List, len(l))
	copy(out, l)

	if o == SortCreated {
		slices.SortStableFunc(out, func(a, b *Entity) bool {
			return a.Created.After(b.Created)
		})
	}

	return out
}

func (l List) FindByNumber(number int64) (*Entity, bool) {
	i := slices.IndexFunc(l, func(e *Entity) bool {
		return e.Number == number
	})
	if i == -1 {
		return nil, false
	}

	return l[i], true
}
