package main

import "planrec/cmd"

func main() {
	cmd.Execute()
}
