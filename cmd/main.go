package main

import (
	"github.com/udflow/udflow-go/cmd/commands"
)

func main() {
	commands.Execute()
}
