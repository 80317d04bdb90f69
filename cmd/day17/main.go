package main

import (
	"advent/internal/day17"
	"advent/internal/solve"
)

func main() {
	solve.Main(day17.New())
}
