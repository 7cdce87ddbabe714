package main

import "github.com/Gthulhu/kanagawa/cmd"

func main() {
	cmd.Execute()
}
