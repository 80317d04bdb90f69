package main

import (
	"advent/internal/day05"
	"advent/internal/solve"
)

func main() {
	solve.Main(day05.New())
}
