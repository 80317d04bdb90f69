package main

import (
	"advent/internal/day14"
	"advent/internal/solve"
)

func main() {
	solve.Main(day14.New())
}
