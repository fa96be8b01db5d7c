package main

import "github.com/notargets/gobie/cmd"

func main() {
	cmd.Execute()
}
