package decoration

import (
	"cmp"
	"slices"

	"github.com/rdleal/intervalst/interval"
)

// Decoration is a styled range of text. Start and End are rune offsets in the
// document, End exclusive.
type Decoration struct {
	// Source groups decorations so they can be removed together.
	Source any
	// Priority orders overlapping decorations. Higher values paint later.
	Priority   int
	Start, End int
	Style      *Style
}

func (d Decoration) Range() (int, int) {
	return d.Start, d.End
}

// DecorationTree leverages a interval tree to stores overlapping decorations.
type DecorationTree struct {
	tree *interval.MultiValueSearchTree[Decoration, int]
}

func NewDecorationTree() *DecorationTree {
	tree := interval.NewMultiValueSearchTree[Decoration](func(a, b int) int {
		return cmp.Compare(a, b)
	})

	return &DecorationTree{
		tree: tree,
	}
}

// Insert new decorations. Empty or inverted ranges are ignored.
func (d *DecorationTree) Insert(decos ...Decoration) {
	for _, deco := range decos {
		if deco.Start >= deco.End {
			continue
		}
		_ = d.tree.Insert(deco.Start, deco.End, deco)
	}
}

// Query returns all decorations covering a given character offset.
func (d *DecorationTree) Query(pos int) []Decoration {
	return d.QueryRange(pos, pos+1)
}

// QueryRange returns all decorations overlapping [start, end), ordered by
// priority and then by start offset.
func (d *DecorationTree) QueryRange(start, end int) []Decoration {
	if start >= end {
		return nil
	}

	all, _ := d.tree.AllIntersections(start, end)
	// The tree treats ranges as closed, so drop the ones that only touch.
	all = slices.DeleteFunc(all, func(deco Decoration) bool {
		return deco.End <= start || deco.Start >= end
	})
	sortDecorations(all)
	return all
}

// All returns every decoration in the tree.
func (d *DecorationTree) All() []Decoration {
	maxVals, found := d.tree.MaxEnd()
	if !found || len(maxVals) == 0 {
		return nil
	}

	_, end := maxVals[0].Range()
	all, _ := d.tree.AllIntersections(0, end)
	sortDecorations(all)
	return all
}

// Len returns the number of decorations in the tree.
func (d *DecorationTree) Len() int {
	return len(d.All())
}

// RemoveBySource removes every decoration whose Source equals source. It
// reports whether anything was removed.
func (d *DecorationTree) RemoveBySource(source any) bool {
	all := d.All()
	cleared := make(map[[2]int]struct{})
	for _, deco := range all {
		if deco.Source != source {
			continue
		}
		s, e := deco.Range()
		if _, ok := cleared[[2]int{s, e}]; ok {
			continue
		}
		cleared[[2]int{s, e}] = struct{}{}

		// Delete drops every value stored for the range, so put back the
		// ones that belong to other sources.
		_ = d.tree.Delete(s, e)
		for _, other := range all {
			if other.Source != source && other.Start == s && other.End == e {
				_ = d.tree.Insert(s, e, other)
			}
		}
	}

	return len(cleared) > 0
}

// RemoveAll empties the tree.
func (d *DecorationTree) RemoveAll() {
	d.tree = NewDecorationTree().tree
}

func sortDecorations(decos []Decoration) {
	slices.SortStableFunc(decos, func(a, b Decoration) int {
		if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Start, b.Start)
	})
}
