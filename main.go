package main

import (
	"github.com/apaude1/cosc519-cpu-simulation/cmd"
)

func main() {
	cmd.Execute()
}
