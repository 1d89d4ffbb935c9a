package main

import "gamegestor/cmd"

func main() {
	cmd.Execute()
}
