package main

import (
	"advent/internal/day12"
	"advent/internal/solve"
)

func main() {
	solve.Main(day12.New())
}
