package main

import "github.com/snipforge/snipforge/cmd"

func main() {
	cmd.Execute()
}
