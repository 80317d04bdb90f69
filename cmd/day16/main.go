package main

import (
	"advent/internal/day16"
	"advent/internal/solve"
)

func main() {
	solve.Main(day16.New())
}
