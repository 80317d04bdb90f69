package main

import (
	"advent/internal/day10"
	"advent/internal/solve"
)

func main() {
	solve.Main(day10.New())
}
