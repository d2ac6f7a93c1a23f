package tetris

import "testing"

func TestUniformPickerDeterministic(t *testing.T) {
	a := NewUniformPicker(42)
	b := NewUniformPicker(42)

	for i := range 100 {
		ka, kb := a.Pick(), b.Pick()
		if ka != kb {
			t.Fatalf("pick %d: %v != %v for the same seed", i, ka, kb)
		}
		if ka == KindNone {
			t.Fatalf("pick %d returned an empty kind", i)
		}
	}
}

func TestBagPickerDealsEveryKind(t *testing.T) {
	p := NewBagPicker(7)

	for bag := range 5 {
		seen := make(map[Kind]int)
		for range len(Kinds) {
			seen[p.Pick()]++
		}
		for _, k := range Kinds {
			if seen[k] != 1 {
				t.Errorf("bag %d: %v dealt %d times, want 1", bag, k, seen[k])
			}
		}
	}
}

func TestNewPicker(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"", false},
		{RandomizerUniform, false},
		{RandomizerBag, false},
		{"nes", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewPicker(tc.name, 1)
			if tc.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPicker() error = %v", err)
			}
			if p.Pick() == KindNone {
				t.Error("picker returned an empty kind")
			}
		})
	}
}
