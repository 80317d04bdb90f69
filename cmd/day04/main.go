package main

import (
	"advent/internal/day04"
	"advent/internal/solve"
)

func main() {
	solve.Main(day04.New())
}
