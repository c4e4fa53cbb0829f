package main

import "stegowire/cmd"

func main() {
	cmd.Execute()
}
