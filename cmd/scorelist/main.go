package main

import "github.com/ddirect/scorelist/cmd/scorelist/cmd"

func main() {
	cmd.Execute()
}
