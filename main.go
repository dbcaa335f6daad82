package main

import "github.com/Digital-Shane/search-picker/internal/cmd"

func main() {
	cmd.Execute()
}
