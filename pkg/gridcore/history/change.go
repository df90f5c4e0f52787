// Package history records cell edits as change sets and replays them for
// undo and redo.
package history

import (
	"sort"

	"github.com/ukaji3/gridcore-go/pkg/gridcore/models"
)

// Change is a single reversible cell edit.
type Change struct {
	Addr models.Address
	Old  string
	New  string
}

// ChangeSet is an ordered group of changes undone and redone as one unit.
type ChangeSet []Change

// Diff builds a change set from before/after snapshots. Addresses missing from
// either side read as "". Entries whose old and new values are equal are dropped.
// The result is ordered row-major.
func Diff(before, after map[models.Address]string) ChangeSet {
	keys := make([]models.Address, 0, len(before)+len(after))
	for addr := range before {
		keys = append(keys, addr)
	}
	for addr := range after {
		if _, ok := before[addr]; !ok {
			keys = append(keys, addr)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	var cs ChangeSet
	for _, addr := range keys {
		if before[addr] != after[addr] {
			cs = append(cs, Change{Addr: addr, Old: before[addr], New: after[addr]})
		}
	}
	return cs
}

// Normalize returns the entries whose old and new values differ.
func (cs ChangeSet) Normalize() ChangeSet {
	var out ChangeSet
	for _, c := range cs {
		if c.Old != c.New {
			out = append(out, c)
		}
	}
	return out
}

// Bounds returns the range covering every address in the set.
func (cs ChangeSet) Bounds() (models.Range, bool) {
	if len(cs) == 0 {
		return models.Range{}, false
	}
	r := models.RangeOf(cs[0].Addr, cs[0].Addr)
	for _, c := range cs[1:] {
		r = r.Extend(c.Addr)
	}
	return r, true
}

// Values returns the old values (forward == false) or the new values
// (forward == true) keyed by address.
func (cs ChangeSet) Values(forward bool) map[models.Address]string {
	out := make(map[models.Address]string, len(cs))
	for _, c := range cs {
		if forward {
			out[c.Addr] = c.New
		} else {
			out[c.Addr] = c.Old
		}
	}
	return out
}
