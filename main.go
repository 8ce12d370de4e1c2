package main

import "github.com/ds4tools/ds4ctl/cmd"

func main() {
	cmd.Execute()
}
