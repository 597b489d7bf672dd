package main

import "strummer/cmd"

func main() {
	cmd.Execute()
}
