package main

import (
	"heartscope/cmd"
)

func main() {
	cmd.Execute()
}
