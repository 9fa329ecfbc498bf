package aggregate

import "testing"

func TestGroupByPreservesFirstSeenOrder(t *testing.T) {
	records := []string{"b", "a", "b", "c", "a"}

	g := GroupBy(records, func(s string) string { return s })

	keys := g.Keys()
	want := []string{"b", "a", "c"}
	if len(keys) != len(want) {
		t.Fatalf("got %d keys, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key[%d] = %q, want %q", i, keys[i], want[i])
		}
	}

	if len(g.Get("b")) != 2 || len(g.Get("a")) != 2 || len(g.Get("c")) != 1 {
		t.Error("group membership counts wrong")
	}
}

func TestGroupByEmptyInput(t *testing.T) {
	g := GroupBy(nil, func(s string) string { return s })
	if g.Len() != 0 {
		t.Errorf("empty input produced %d groups", g.Len())
	}
}

type scored struct {
	name  string
	score float64
}

func TestTopNStableTies(t *testing.T) {
	items := []scored{
		{"first", 10},
		{"second", 20},
		{"third", 10},
		{"fourth", 30},
	}

	top := TopN(items, 0, func(s scored) float64 { return s.score })

	wantOrder := []string{"fourth", "second", "first", "third"}
	for i, w := range wantOrder {
		if top[i].name != w {
			t.Errorf("rank %d = %q, want %q (ties keep insertion order)", i, top[i].name, w)
		}
	}
}

func TestTopNLimits(t *testing.T) {
	items := []scored{{"a", 1}, {"b", 2}, {"c", 3}}

	if got := TopN(items, 2, func(s scored) float64 { return s.score }); len(got) != 2 {
		t.Errorf("TopN(2) returned %d items", len(got))
	}
	if got := TopN(items, 10, func(s scored) float64 { return s.score }); len(got) != 3 {
		t.Errorf("TopN beyond length returned %d items", len(got))
	}
	if got := TopN(items, 0, func(s scored) float64 { return s.score }); len(got) != 3 {
		t.Errorf("TopN(0) returned %d items, want all", len(got))
	}
}

func TestTopNDoesNotMutateInput(t *testing.T) {
	items := []scored{{"a", 1}, {"b", 2}}
	TopN(items, 0, func(s scored) float64 { return s.score })
	if items[0].name != "a" {
		t.Error("TopN reordered the caller's slice")
	}
}
