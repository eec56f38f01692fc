package main

import (
	"github.com/vena-network/vena-node/command/root"
)

func main() {
	root.NewRootCommand().Execute()
}
