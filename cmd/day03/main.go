package main

import (
	"advent/internal/day03"
	"advent/internal/solve"
)

func main() {
	solve.Main(day03.New())
}
