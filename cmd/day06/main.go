package main

import (
	"advent/internal/day06"
	"advent/internal/solve"
)

func main() {
	solve.Main(day06.New())
}
