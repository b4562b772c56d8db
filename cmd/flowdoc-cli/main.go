package main

import "flowdoc/cmd/flowdoc-cli/cmd"

func main() {
	cmd.Execute()
}
