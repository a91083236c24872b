package main

import "github.com/anomius/nushell/cmd"

func main() {
	cmd.Execute()
}
