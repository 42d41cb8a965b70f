package main

import "batcave.app/batcave/cmd"

func main() {
	cmd.Execute()
}
