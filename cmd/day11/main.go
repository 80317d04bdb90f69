package main

import (
	"advent/internal/day11"
	"advent/internal/solve"
)

func main() {
	solve.Main(day11.New())
}
