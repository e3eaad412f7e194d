package main

import "github.com/they4kman/concord/cmd"

func main() {
	cmd.Execute()
}
