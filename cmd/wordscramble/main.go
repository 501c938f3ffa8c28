// Package main is the entry point for WordScramble.
package main

func main() {
	Execute()
}
