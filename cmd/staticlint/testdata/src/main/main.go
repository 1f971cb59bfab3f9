package main

import "os"

func CLI(args []string) int {
	return len(args)
}

func main() {
	os.Exit(CLI(os.Args))
	os.Exit(1) // want "don't use os.Exit\\(\\) in main"
}

func other() {
	os.Exit(2)
}
