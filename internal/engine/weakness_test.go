package engine

import "testing"

func TestSelectorEmptyUntilRefresh(t *testing.T) {
	s := NewWeaknessSelector()
	s.Scope(OpAddition, 2)
	if len(s.Pool()) != 0 {
		t.Fatalf("pool = %v, want empty before refresh", s.Pool())
	}
}

func TestSelectorInstallsMatchingPool(t *testing.T) {
	s := NewWeaknessSelector()
	s.Scope(OpAddition, 2)
	entries := []WeaknessEntry{{Op: OpAddition, Num1: 17, Num2: 48}}
	s.SetPool(OpAddition, 2, entries)
	if len(s.Pool()) != 1 {
		t.Fatalf("pool size = %d, want 1", len(s.Pool()))
	}
}

func TestSelectorDropsStaleResponse(t *testing.T) {
	s := NewWeaknessSelector()
	s.Scope(OpAddition, 2)
	s.Scope(OpDivision, 3) // session reconfigured before the fetch resolved

	s.SetPool(OpAddition, 2, []WeaknessEntry{{Op: OpAddition, Num1: 17, Num2: 48}})
	if len(s.Pool()) != 0 {
		t.Fatal("stale pool installed after rescope")
	}
}

func TestSelectorScopeClearsPreviousPool(t *testing.T) {
	s := NewWeaknessSelector()
	s.Scope(OpAddition, 2)
	s.SetPool(OpAddition, 2, []WeaknessEntry{{Op: OpAddition, Num1: 17, Num2: 48}})

	s.Scope(OpAddition, 3)
	if len(s.Pool()) != 0 {
		t.Fatal("pool survived rescope to different digits")
	}
}
