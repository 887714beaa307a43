package main

import (
	"github.com/blockfall/blockfall-cli/internal/cmd"
)

func main() {
	cmd.Execute()
}
