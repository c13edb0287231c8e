package booking

import "testing"

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"identical", Interval{540, 600}, Interval{540, 600}, true},
		{"partial overlap", Interval{540, 600}, Interval{570, 630}, true},
		{"contained", Interval{540, 660}, Interval{570, 600}, true},
		{"adjacent after", Interval{540, 600}, Interval{600, 660}, false},
		{"adjacent before", Interval{600, 660}, Interval{540, 600}, false},
		{"disjoint", Interval{540, 600}, Interval{720, 780}, false},
		{"one minute overlap", Interval{540, 601}, Interval{600, 660}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.want {
				t.Fatalf("Overlaps(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			// Overlap is symmetric.
			if got := tc.b.Overlaps(tc.a); got != tc.want {
				t.Fatalf("Overlaps(%v, %v) = %v, want %v", tc.b, tc.a, got, tc.want)
			}
		})
	}
}

func TestNewInterval(t *testing.T) {
	iv, err := NewInterval("09:30", 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iv.Start != 570 || iv.End != 660 {
		t.Fatalf("interval = %+v, want 570-660", iv)
	}
	if iv.Format() != "09:30-11:00" {
		t.Fatalf("Format() = %q", iv.Format())
	}

	if _, err := NewInterval("9:30pm", 60); err == nil {
		t.Fatal("expected error for malformed time")
	}
}
