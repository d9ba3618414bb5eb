package main

import "github.com/pkeffect/antigravity-architect/cmd"

func main() {
	cmd.Execute()
}
