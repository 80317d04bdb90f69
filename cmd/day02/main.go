package main

import (
	"advent/internal/day02"
	"advent/internal/solve"
)

func main() {
	solve.Main(day02.New())
}
