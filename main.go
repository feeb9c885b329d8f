package main

import "go-scales/cmd"

func main() {
	cmd.Execute()
}
