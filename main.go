package main

import (
	"os"

	"github.com/nickboucher/abom/cmd"
	"github.com/nickboucher/abom/common"
)

func main() {
	common.Timeline("Start.")
	cmd.Execute(os.Args[1:])
}
