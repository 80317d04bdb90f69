package main

import (
	"advent/internal/day09"
	"advent/internal/solve"
)

func main() {
	solve.Main(day09.New())
}
