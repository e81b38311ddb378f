package main

import "github.com/lucbat/go-lol-coach/cmd"

func main() {
	cmd.Execute()
}
