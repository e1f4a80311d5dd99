package main

import "github.com/masmgr/lawdiff/cmd"

func main() {
	cmd.Run()
}
