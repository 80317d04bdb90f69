package main

import (
	"advent/internal/day15"
	"advent/internal/solve"
)

func main() {
	solve.Main(day15.New())
}
