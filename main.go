package main

import "github.com/they4kman/termsweep/cmd"

func main() {
	cmd.Execute()
}
