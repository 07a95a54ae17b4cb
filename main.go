package main

import "github.com/shifaalhind/backend/cmd"

func main() {
	cmd.Execute()
}
