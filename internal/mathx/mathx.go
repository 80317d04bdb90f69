// Package mathx holds the bits of number theory shared by the daily
// puzzles: gcd/lcm and merging of modular congruences.
package mathx

import "fmt"

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM returns the least common multiple of a and b. LCM(0, 0) is 0.
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return a / GCD(a, b) * b
}

// Congruence is the residue class Remainder modulo Modulus.
type Congruence struct {
	Remainder int
	Modulus   int
}

// extendedGCD returns g, x, y such that a*x + b*y = g = gcd(a, b).
func extendedGCD(a, b int) (g, x, y int) {
	if b == 0 {
		return a, 1, 0
	}
	g, x1, y1 := extendedGCD(b, a%b)
	return g, y1, x1 - (a/b)*y1
}

// Merge combines two congruences into one satisfying both, using the
// general Chinese remainder construction. It fails when the remainders
// disagree modulo the gcd of the two moduli.
func Merge(a, b Congruence) (Congruence, error) {
	g, p, _ := extendedGCD(a.Modulus, b.Modulus)
	diff := b.Remainder - a.Remainder
	if diff%g != 0 {
		return Congruence{}, fmt.Errorf("incompatible congruences: %d mod %d vs %d mod %d",
			a.Remainder, a.Modulus, b.Remainder, b.Modulus)
	}
	lcm := a.Modulus / g * b.Modulus
	// x = r1 + m1*p*(r2-r1)/g satisfies both; reduce the multiplier
	// modulo m2/g first to keep the intermediate product small.
	step := p % (b.Modulus / g) * (diff / g % (b.Modulus / g)) % (b.Modulus / g)
	r := (a.Remainder + a.Modulus*step) % lcm
	if r < 0 {
		r += lcm
	}
	return Congruence{Remainder: r, Modulus: lcm}, nil
}

// MergeAll folds a list of congruences into a single one, or fails on
// the first incompatible pair.
func MergeAll(all []Congruence) (Congruence, error) {
	if len(all) == 0 {
		return Congruence{}, fmt.Errorf("no congruences to merge")
	}
	merged := all[0]
	for _, c := range all[1:] {
		var err error
		merged, err = Merge(merged, c)
		if err != nil {
			return Congruence{}, err
		}
	}
	return merged, nil
}
