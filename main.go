package main

import "github.com/theirongolddev/alphawin/cmd"

func main() {
	cmd.Execute()
}
