package main

import "github.com/pdewey/pburn/cmd"

func main() {
	cmd.Execute()
}
