package mathx

import "testing"

func TestGCD(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{12, 8, 4},
		{8, 12, 4},
		{7, 13, 1},
		{0, 5, 5},
		{5, 0, 5},
		{18, 18, 18},
		{-12, 8, 4},
	}
	for _, c := range cases {
		if got := GCD(c.a, c.b); got != c.want {
			t.Errorf("GCD(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestLCM(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{4, 6, 12},
		{3, 5, 15},
		{7, 7, 7},
		{0, 5, 0},
		{1, 9, 9},
	}
	for _, c := range cases {
		if got := LCM(c.a, c.b); got != c.want {
			t.Errorf("LCM(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestMerge(t *testing.T) {
	cases := []struct {
		name string
		a, b Congruence
		want Congruence
	}{
		{
			name: "coprime moduli",
			a:    Congruence{Remainder: 2, Modulus: 3},
			b:    Congruence{Remainder: 3, Modulus: 5},
			want: Congruence{Remainder: 8, Modulus: 15},
		},
		{
			name: "shared factor",
			a:    Congruence{Remainder: 2, Modulus: 4},
			b:    Congruence{Remainder: 4, Modulus: 6},
			want: Congruence{Remainder: 10, Modulus: 12},
		},
		{
			name: "identical",
			a:    Congruence{Remainder: 3, Modulus: 7},
			b:    Congruence{Remainder: 3, Modulus: 7},
			want: Congruence{Remainder: 3, Modulus: 7},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Merge(c.a, c.b)
			if err != nil {
				t.Fatalf("Merge: %v", err)
			}
			if got != c.want {
				t.Errorf("Merge(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
			}
			if got.Remainder%c.a.Modulus != ((c.a.Remainder%c.a.Modulus)+c.a.Modulus)%c.a.Modulus {
				t.Errorf("result %v does not satisfy %v", got, c.a)
			}
			if got.Remainder%c.b.Modulus != ((c.b.Remainder%c.b.Modulus)+c.b.Modulus)%c.b.Modulus {
				t.Errorf("result %v does not satisfy %v", got, c.b)
			}
		})
	}
}

func TestMerge_Incompatible(t *testing.T) {
	_, err := Merge(Congruence{Remainder: 1, Modulus: 4}, Congruence{Remainder: 2, Modulus: 6})
	if err == nil {
		t.Fatal("expected an error for incompatible congruences")
	}
}

func TestMergeAll(t *testing.T) {
	got, err := MergeAll([]Congruence{
		{Remainder: 0, Modulus: 3},
		{Remainder: 3, Modulus: 4},
		{Remainder: 4, Modulus: 5},
	})
	if err != nil {
		t.Fatalf("MergeAll: %v", err)
	}
	want := Congruence{Remainder: 39, Modulus: 60}
	if got != want {
		t.Errorf("MergeAll = %v, want %v", got, want)
	}
}

func TestMergeAll_Empty(t *testing.T) {
	if _, err := MergeAll(nil); err == nil {
		t.Fatal("expected an error for an empty list")
	}
}
