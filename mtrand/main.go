package main

import (
	"github.com/tutils/mtrand/cmd"
)

func main() {
	cmd.Execute()
}
