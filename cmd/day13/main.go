package main

import (
	"advent/internal/day13"
	"advent/internal/solve"
)

func main() {
	solve.Main(day13.New())
}
