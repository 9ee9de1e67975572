package main

import "github.com/strmbuild/strm/internal/command"

func main() {
	command.Execute()
}
