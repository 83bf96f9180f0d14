package main

import "elms/cmd"

func main() {
	cmd.Execute()
}
