package pagination

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{7, 7},
	}

	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestOffset(t *testing.T) {
	if got := Offset(1, 5); got != 0 {
		t.Errorf("expected offset 0 for page 1, got %d", got)
	}
	if got := Offset(3, 5); got != 10 {
		t.Errorf("expected offset 10 for page 3, got %d", got)
	}
	if got := Offset(0, 5); got != 0 {
		t.Errorf("expected offset 0 for page 0, got %d", got)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		want  int
	}{
		{0, 0},
		{1, 1},
		{5, 1},
		{6, 2},
		{10, 2},
		{11, 3},
	}

	for _, c := range cases {
		if got := TotalPages(c.total, 5); got != c.want {
			t.Errorf("TotalPages(%d, 5) = %d, want %d", c.total, got, c.want)
		}
	}
}
