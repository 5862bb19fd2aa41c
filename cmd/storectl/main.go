package main

import "store/cmd/storectl/commands"

func main() {
	commands.Execute()
}
