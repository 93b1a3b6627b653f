package compare

import (
	"fmt"
	"strings"
	"testing"
)

type sourceItem struct {
	ID    int
	Value string
}

type targetItem struct {
	ID int
}

func TestByKey(t *testing.T) {
	source := []sourceItem{
		{ID: 1, Value: "a"},
		{ID: 2, Value: "b"},
	}
	target := []targetItem{
		{ID: 2},
		{ID: 3},
	}

	result := ByKey(source, target,
		func(s sourceItem) int { return s.ID },
		func(t targetItem) int { return t.ID })

	if len(result.Found) != 1 {
		t.Fatalf("Found has %d items, want 1", len(result.Found))
	}
	if result.Found[0].ID != 2 || result.Found[0].Value != "b" {
		t.Errorf("Found[0] = %+v, want source item for id 2", result.Found[0])
	}

	if len(result.NotFound) != 1 {
		t.Fatalf("NotFound has %d items, want 1", len(result.NotFound))
	}
	if result.NotFound[0].ID != 3 {
		t.Errorf("NotFound[0] = %+v, want target item with id 3", result.NotFound[0])
	}
}

func TestByKey_TargetOrderPreserved(t *testing.T) {
	source := []sourceItem{
		{ID: 10, Value: "x"},
		{ID: 30, Value: "y"},
		{ID: 50, Value: "z"},
	}
	target := []targetItem{
		{ID: 50}, {ID: 20}, {ID: 10}, {ID: 40}, {ID: 30},
	}

	result := ByKey(source, target,
		func(s sourceItem) int { return s.ID },
		func(t targetItem) int { return t.ID })

	wantFound := []string{"z", "x", "y"}
	for i, s := range result.Found {
		if s.Value != wantFound[i] {
			t.Errorf("Found[%d] = %+v, want value %q (target order)", i, s, wantFound[i])
		}
	}

	wantMissing := []int{20, 40}
	for i, m := range result.NotFound {
		if m.ID != wantMissing[i] {
			t.Errorf("NotFound[%d] = %+v, want id %d (target order)", i, m, wantMissing[i])
		}
	}
}

func TestByKey_DuplicateSourceKeysLastWins(t *testing.T) {
	source := []sourceItem{
		{ID: 1, Value: "first"},
		{ID: 1, Value: "second"},
	}
	target := []targetItem{{ID: 1}}

	result := ByKey(source, target,
		func(s sourceItem) int { return s.ID },
		func(t targetItem) int { return t.ID })

	if len(result.Found) != 1 || result.Found[0].Value != "second" {
		t.Errorf("Found = %+v, want the later duplicate to win", result.Found)
	}
}

func TestByKey_EmptyInputs(t *testing.T) {
	keyFn := func(s sourceItem) int { return s.ID }
	targetKeyFn := func(t targetItem) int { return t.ID }

	empty := ByKey(nil, nil, keyFn, targetKeyFn)
	if len(empty.Found) != 0 || len(empty.NotFound) != 0 {
		t.Errorf("ByKey(nil, nil) = %+v, want empty result", empty)
	}

	noSource := ByKey(nil, []targetItem{{ID: 1}}, keyFn, targetKeyFn)
	if len(noSource.Found) != 0 || len(noSource.NotFound) != 1 {
		t.Errorf("ByKey(nil, target) = %+v, want everything not found", noSource)
	}
}

func TestByKeyFunc(t *testing.T) {
	source := []sourceItem{
		{ID: 1, Value: "a"},
		{ID: 2, Value: "b"},
	}
	target := []targetItem{
		{ID: 2},
		{ID: 3},
	}

	found, notFound := ByKeyFunc(source, target,
		func(s sourceItem) int { return s.ID },
		func(t targetItem) int { return t.ID },
		func(s sourceItem, t targetItem) string {
			return fmt.Sprintf("%d:%s", t.ID, s.Value)
		})

	if len(found) != 1 || found[0] != "2:b" {
		t.Errorf("found = %v, want [2:b]", found)
	}
	if len(notFound) != 1 || notFound[0].ID != 3 {
		t.Errorf("notFound = %+v, want target with id 3", notFound)
	}
}

func TestByKey_NormalizedStringKeys(t *testing.T) {
	source := []string{"alpha", "beta"}
	target := []string{"BETA", "gamma"}

	// Callers needing cross-representation matching normalize in the key func.
	result := ByKey(source, target,
		func(s string) string { return s },
		func(t string) string { return strings.ToLower(t) })

	if len(result.Found) != 1 || result.Found[0] != "beta" {
		t.Errorf("Found = %v, want [beta]", result.Found)
	}
	if len(result.NotFound) != 1 || result.NotFound[0] != "gamma" {
		t.Errorf("NotFound = %v, want [gamma]", result.NotFound)
	}
}
