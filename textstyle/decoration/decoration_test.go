package decoration

import (
	"testing"

	"gioui.org/font"
	"github.com/chapar-rest/wordmark"
)

func TestInsertDecoration(t *testing.T) {
	d := NewDecorationTree()

	d.Insert(
		Decoration{Source: "a", Start: 0, End: 5},
		Decoration{Source: "a", Start: 6, End: 9},
		Decoration{Source: "b", Start: 7, End: 10},
		Decoration{Source: "b", Start: 0, End: 6},
		Decoration{Source: "c", Start: 11, End: 15},
		Decoration{Source: "c", Start: 16, End: 20},
		// ignored
		Decoration{Source: "c", Start: 3, End: 3},
	)

	all := d.QueryRange(0, 20)
	if len(all) != 6 || d.Len() != 6 {
		t.Fail()
	}

	// half open ranges: [0, 5) does not cover offset 5.
	if v := d.Query(5); len(v) != 1 || v[0].Source != "b" {
		t.Fail()
	}

	if v := d.QueryRange(15, 16); len(v) != 0 {
		t.Fail()
	}
}

func TestRemoveDecorationBySource(t *testing.T) {
	d := NewDecorationTree()

	d.Insert(
		Decoration{Source: "selection", Start: 0, End: 5},
		Decoration{Source: "other", Start: 6, End: 9},
		Decoration{Source: "other", Start: 7, End: 10},
		Decoration{Source: "other", Start: 0, End: 6},
		// same range as a removed decoration must survive.
		Decoration{Source: "other", Start: 16, End: 20},
		Decoration{Source: "selection", Start: 16, End: 20},
	)

	if !d.RemoveBySource("selection") {
		t.Fail()
	}
	if v := d.QueryRange(0, 5); len(v) != 1 {
		t.Fail()
	}

	if v := d.QueryRange(16, 20); len(v) != 1 || v[0].Source != "other" {
		t.Fail()
	}

	if d.RemoveBySource("missing") {
		t.Fail()
	}

	d.RemoveAll()
	if d.Len() != 0 {
		t.Fail()
	}
}

func TestQueryOrdersByPriority(t *testing.T) {
	d := NewDecorationTree()
	d.Insert(
		Decoration{Source: "late", Priority: 2, Start: 0, End: 5},
		Decoration{Source: "early", Priority: 1, Start: 2, End: 4},
	)

	v := d.Query(3)
	if len(v) != 2 || v[0].Source != "early" || v[1].Source != "late" {
		t.Fail()
	}
}

func TestRegistryDispose(t *testing.T) {
	reg := NewRegistry()
	treeA, treeB := NewDecorationTree(), NewDecorationTree()
	reg.Track(treeA)
	reg.Track(treeB)

	h := reg.CreateDecoration(wordmark.DecorationStyle{BackgroundColor: "#ffff99"})
	typ := h.(*Type)
	other := reg.CreateDecoration(wordmark.DecorationStyle{BackgroundColor: "#ccffcc"}).(*Type)

	Set(treeA, typ, []wordmark.Span{{Start: 0, End: 3}, {Start: 5, End: 8}})
	Set(treeB, typ, []wordmark.Span{{Start: 1, End: 2}})
	Set(treeA, other, []wordmark.Span{{Start: 0, End: 3}})

	if treeA.Len() != 3 || treeB.Len() != 1 {
		t.Fatalf("unexpected sizes %d, %d", treeA.Len(), treeB.Len())
	}

	// replacing ranges drops the old ones.
	Set(treeA, typ, []wordmark.Span{{Start: 10, End: 12}})
	if treeA.Len() != 2 {
		t.Fail()
	}

	h.Dispose()
	if !typ.Disposed() || treeA.Len() != 1 || treeB.Len() != 0 {
		t.Fail()
	}

	// a disposed type cannot be set again.
	Set(treeB, typ, []wordmark.Span{{Start: 1, End: 2}})
	if treeB.Len() != 0 {
		t.Fail()
	}

	reg.Untrack(treeA)
	other.Dispose()
	if treeA.Len() != 1 {
		t.Fail()
	}
}

func TestNewStyle(t *testing.T) {
	style, err := NewStyle(wordmark.DecorationStyle{
		BackgroundColor: "#ffcc99",
		ForegroundColor: "#000000",
		BorderRadius:    "2px",
		FontWeight:      "bold",
	})
	if err != nil {
		t.Fatal(err)
	}

	if style.Background.Hex() != "#ffcc99" || style.BorderRadius != 2 || !style.Bold() {
		t.Fail()
	}

	if w, _ := parseWeight("700"); w != font.Bold {
		t.Errorf("got weight %v", w)
	}

	if _, err := NewStyle(wordmark.DecorationStyle{BackgroundColor: "#zzz"}); err == nil {
		t.Fail()
	}
	if _, err := NewStyle(wordmark.DecorationStyle{FontWeight: "heavy"}); err == nil {
		t.Fail()
	}
}

func TestRegistryInvalidStyleFallsBack(t *testing.T) {
	reg := NewRegistry()

	ok := reg.CreateDecoration(wordmark.DecorationStyle{BackgroundColor: "#FFFF99", BorderRadius: "2px"}).(*Type)
	bad := reg.CreateDecoration(wordmark.DecorationStyle{BackgroundColor: "nope"}).(*Type)

	if got := ok.Style().Background.Hex(); got != "#ffff99" {
		t.Errorf("got %s", got)
	}
	if bad.Style().Background.IsSet() || bad.Style().BorderRadius != 0 {
		t.Errorf("invalid style should render empty, got %+v", bad.Style())
	}
	if bad.id <= ok.id {
		t.Error("later types should paint over earlier ones")
	}
}
