package main

import "github.com/digitalsleuth/go-mbdb/cmd"

func main() {
	cmd.Execute()
}
