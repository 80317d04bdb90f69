package main

import (
	"advent/internal/day07"
	"advent/internal/solve"
)

func main() {
	solve.Main(day07.New())
}
