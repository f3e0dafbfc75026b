package main

import "github.com/xvierd/pomodomate/cmd"

func main() {
	cmd.Execute()
}
