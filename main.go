package main

import "github.com/inkwell-md/inkwell/cmd"

func main() {
	cmd.Execute()
}
