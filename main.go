package main

import (
	"github.com/farmasystem/pos/cmd"
)

func main() {
	cmd.Start()
}
