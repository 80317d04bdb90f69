package main

import (
	"advent/internal/day01"
	"advent/internal/solve"
)

func main() {
	solve.Main(day01.New())
}
