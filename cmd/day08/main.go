package main

import (
	"advent/internal/day08"
	"advent/internal/solve"
)

func main() {
	solve.Main(day08.New())
}
