package main

import "simple-bank/cmd"

func main() {
	cmd.Execute()
}
