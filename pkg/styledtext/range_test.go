package styledtext

import "testing"

// TestIntersect tests range intersection, including empty, equal, nested and
// touching ranges.
func TestIntersect(t *testing.T) {
	tests := []struct {
		name string
		r1   Range
		r2   Range
		want Range
		ok   bool
	}{
		{"both empty", Range{0, 0}, Range{0, 0}, Range{}, false},
		{"empty left", Range{0, 0}, Range{1, 5}, Range{}, false},
		{"empty right", Range{0, 5}, Range{1, 1}, Range{}, false},
		{"reversed is empty", Range{6, 44}, Range{44, 6}, Range{}, false},
		{"equal", Range{0, 1}, Range{0, 1}, Range{0, 1}, true},
		{"equal mid", Range{5, 9}, Range{5, 9}, Range{5, 9}, true},
		{"equal large", Range{9999, 10000}, Range{9999, 10000}, Range{9999, 10000}, true},
		{"prefix", Range{0, 10}, Range{0, 5}, Range{0, 5}, true},
		{"prefix swapped", Range{0, 5}, Range{0, 10}, Range{0, 5}, true},
		{"sub slice", Range{0, 50}, Range{0, 49}, Range{0, 49}, true},
		{"partial overlap", Range{5, 10}, Range{4, 8}, Range{5, 8}, true},
		{"disjoint", Range{59, 90}, Range{20, 52}, Range{}, false},
		{"touching", Range{59, 90}, Range{20, 59}, Range{}, false},
		{"one byte overlap", Range{59, 90}, Range{20, 60}, Range{59, 60}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Intersect(tt.r1, tt.r2)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("Intersect(%v, %v) = %v, %v, want %v, %v",
					tt.r1, tt.r2, got, ok, tt.want, tt.ok)
			}

			// Intersection is commutative.
			rev, revOK := Intersect(tt.r2, tt.r1)
			if rev != got || revOK != ok {
				t.Errorf("Intersect(%v, %v) = %v, %v, not commutative with %v, %v",
					tt.r2, tt.r1, rev, revOK, got, ok)
			}
		})
	}
}

// TestRemove tests cutting a sub-range out of a range.
func TestRemove(t *testing.T) {
	tests := []struct {
		name     string
		r1       Range
		re       Range
		left     Range
		hasLeft  bool
		right    Range
		hasRight bool
	}{
		{"both empty", Range{0, 0}, Range{0, 0}, Range{}, false, Range{}, false},
		{"empty from reversed", Range{0, 0}, Range{1, 0}, Range{}, false, Range{}, false},
		{"remove all", Range{0, 5}, Range{0, 5}, Range{}, false, Range{}, false},
		{"remove single", Range{0, 1}, Range{0, 1}, Range{}, false, Range{}, false},
		{"empty re keeps r1", Range{0, 5}, Range{2, 2}, Range{0, 5}, true, Range{}, false},
		{"left keep 4", Range{0, 5}, Range{4, 5}, Range{0, 4}, true, Range{}, false},
		{"left keep 3", Range{0, 5}, Range{3, 5}, Range{0, 3}, true, Range{}, false},
		{"left keep 1", Range{0, 5}, Range{1, 5}, Range{0, 1}, true, Range{}, false},
		{"miss touching left", Range{9, 14}, Range{0, 9}, Range{9, 14}, true, Range{}, false},
		{"miss before", Range{9, 14}, Range{0, 3}, Range{9, 14}, true, Range{}, false},
		{"miss touching right", Range{9, 14}, Range{14, 52}, Range{9, 14}, true, Range{}, false},
		{"right keep 4", Range{0, 5}, Range{0, 4}, Range{}, false, Range{4, 5}, true},
		{"right keep 3", Range{0, 5}, Range{0, 3}, Range{}, false, Range{3, 5}, true},
		{"right keep 1", Range{0, 5}, Range{0, 1}, Range{}, false, Range{1, 5}, true},
		{"both keep narrow", Range{0, 10}, Range{1, 9}, Range{0, 1}, true, Range{9, 10}, true},
		{"both keep wide right", Range{0, 10}, Range{1, 2}, Range{0, 1}, true, Range{2, 10}, true},
		{"both keep wide left", Range{0, 10}, Range{6, 9}, Range{0, 6}, true, Range{9, 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, hasLeft, right, hasRight := Remove(tt.r1, tt.re)
			if hasLeft != tt.hasLeft || hasRight != tt.hasRight ||
				(hasLeft && left != tt.left) || (hasRight && right != tt.right) {
				t.Errorf("Remove(%v, %v) = (%v, %v, %v, %v), want (%v, %v, %v, %v)",
					tt.r1, tt.re, left, hasLeft, right, hasRight,
					tt.left, tt.hasLeft, tt.right, tt.hasRight)
			}
		})
	}
}

// TestRemoveReconstructs checks that the remainders plus the intersection
// reassemble the original range without overlap.
func TestRemoveReconstructs(t *testing.T) {
	cases := []struct {
		r1, re Range
	}{
		{Range{0, 10}, Range{3, 7}},
		{Range{0, 10}, Range{0, 7}},
		{Range{0, 10}, Range{3, 10}},
		{Range{2, 8}, Range{0, 5}},
		{Range{2, 8}, Range{5, 12}},
		{Range{2, 8}, Range{10, 12}},
	}

	for _, c := range cases {
		left, hasLeft, right, hasRight := Remove(c.r1, c.re)
		inter, hasInter := Intersect(c.r1, c.re)

		covered := 0
		if hasLeft {
			covered += left.Len()
			if left.Start != c.r1.Start {
				t.Errorf("Remove(%v, %v): left %v does not start at r1", c.r1, c.re, left)
			}
		}
		if hasInter {
			covered += inter.Len()
		}
		if hasRight {
			covered += right.Len()
			if right.End != c.r1.End {
				t.Errorf("Remove(%v, %v): right %v does not end at r1", c.r1, c.re, right)
			}
		}
		if covered != c.r1.Len() {
			t.Errorf("Remove(%v, %v): pieces cover %d bytes, want %d", c.r1, c.re, covered, c.r1.Len())
		}
	}
}
