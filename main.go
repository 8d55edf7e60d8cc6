package main

import "tlang/cmd"

func main() {
	cmd.Execute()
}
