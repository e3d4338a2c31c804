package quotes

import "testing"

func TestStagnationNext(t *testing.T) {
	tests := []struct {
		name       string
		limit, cap int
		added      []int
		wantCycles int
	}{
		{
			name:  "stops after limit quiet cycles",
			limit: 3, cap: 25,
			added:      []int{10, 10, 0, 0, 0},
			wantCycles: 5,
		},
		{
			name:  "new entries reset the quiet streak",
			limit: 2, cap: 25,
			added:      []int{10, 0, 5, 0, 0},
			wantCycles: 5,
		},
		{
			name:  "stops at the hard cap despite progress",
			limit: 3, cap: 4,
			added:      []int{10, 10, 10, 10, 10},
			wantCycles: 4,
		},
		{
			name:  "quiet from the start",
			limit: 2, cap: 25,
			added:      []int{0, 0},
			wantCycles: 2,
		},
		{
			name:  "cap of one",
			limit: 3, cap: 1,
			added:      []int{10},
			wantCycles: 1,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &Stagnation{Limit: tc.limit, Cap: tc.cap}
			for i, added := range tc.added {
				got := s.Next(added)
				last := i == len(tc.added)-1
				if got == last {
					t.Fatalf("Next(%d) on cycle %d = %t, want %t", added, i+1, got, !last)
				}
			}
			if got := s.Cycles(); got != tc.wantCycles {
				t.Errorf("Cycles() = %d, want %d", got, tc.wantCycles)
			}
		})
	}
}
