package projection

import (
	"reflect"
	"testing"
)

var boxOne = SlotConfig{ID: "box-1", Subtitle: "Box 1", Accent: "#5B8DEF"}

func TestProjectProducesOneFragmentPerLabel(t *testing.T) {
	selection := Selection{"CH", "JP"}
	fragments := Project(selection, boxOne)
	if len(fragments) != len(selection) {
		t.Fatalf("len(fragments) = %d, want %d", len(fragments), len(selection))
	}
	want := []Fragment{
		{Slot: "box-1", Value: "CH", Label: "Box 1"},
		{Slot: "box-1", Value: "JP", Label: "Box 1"},
	}
	if !reflect.DeepEqual(fragments, want) {
		t.Fatalf("fragments = %+v, want %+v", fragments, want)
	}
}

func TestProjectEmptySelection(t *testing.T) {
	for _, selection := range []Selection{nil, {}} {
		if got := Project(selection, boxOne); len(got) != 0 {
			t.Fatalf("Project(%v) = %v, want empty", selection, got)
		}
	}
}

func TestProjectPreservesDuplicates(t *testing.T) {
	fragments := Project(Selection{"GER", "GER"}, boxOne)
	if len(fragments) != 2 {
		t.Fatalf("len(fragments) = %d, want 2", len(fragments))
	}
	for i, frag := range fragments {
		if frag.Value != "GER" || frag.Label != "Box 1" {
			t.Fatalf("fragment %d = %+v, want value GER label Box 1", i, frag)
		}
	}
}

func TestProjectIsPure(t *testing.T) {
	selection := Selection{"CH", "JP", "GER"}
	first := Project(selection, boxOne)
	second := Project(selection, boxOne)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated projection differs: %+v vs %+v", first, second)
	}
	// Mutating one result must not leak into the next pass.
	first[0].Value = "mutated"
	third := Project(selection, boxOne)
	if !reflect.DeepEqual(second, third) {
		t.Fatalf("projection retained state: %+v vs %+v", second, third)
	}
}

func TestProjectPreservesOrder(t *testing.T) {
	slot := SlotConfig{ID: "box-2", Subtitle: "Box 2"}
	base := Selection{"CH", "JP", "GER"}
	permuted := Selection{"GER", "CH", "JP"}
	for _, selection := range []Selection{base, permuted} {
		fragments := Project(selection, slot)
		for i, frag := range fragments {
			if frag.Value != selection[i] {
				t.Fatalf("fragment %d value = %s, want %s", i, frag.Value, selection[i])
			}
		}
	}
}

func TestProjectDoesNotAliasSelection(t *testing.T) {
	selection := Selection{"CH"}
	fragments := Project(selection, boxOne)
	selection[0] = "JP"
	if fragments[0].Value != "CH" {
		t.Fatalf("fragment value changed with selection, got %s", fragments[0].Value)
	}
}

func TestStateOf(t *testing.T) {
	if got := StateOf(nil); got != StateAwaitingSelection {
		t.Fatalf("StateOf(nil) = %d, want awaiting", got)
	}
	if got := StateOf(Selection{}); got != StateAwaitingSelection {
		t.Fatalf("StateOf(empty) = %d, want awaiting", got)
	}
	if got := StateOf(Selection{"CH"}); got != StateRendered {
		t.Fatalf("StateOf(non-empty) = %d, want rendered", got)
	}
}
