package main

import "matmul/cmd"

// matmul multiplies two random matrices with the textbook triple loop and
// prints them. It doubles as a profiling baseline: run it with --profile, then
// use the top and hotloops commands to see where the time went.
func main() {
	cmd.Execute()
}
