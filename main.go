package main

import "github.com/wellnesshub/wellnesshub-cli/internal/commands"

func main() {
	commands.Execute()
}
