package main

import (
	"github.com/chertnetwork/go-chert/cmd/chert/cmd"
)

func main() {
	cmd.Execute()
}
