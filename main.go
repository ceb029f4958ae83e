package main

import (
	"github.com/abe-nagisa/ziplong/cmd"
)

func main() {
	cmd.Execute()
}
