package main

import (
	"flag"
	"os"

	"github.com/nickboucher/abom/common"
	"github.com/nickboucher/abom/operations"
	"github.com/nickboucher/abom/pretty"
)

var (
	debugFlag   bool
	traceFlag   bool
	versionFlag bool
)

func init() {
	flag.BoolVar(&debugFlag, "debug", false, "Turn on debugging output.")
	flag.BoolVar(&traceFlag, "trace", false, "Turn on tracing output.")
	flag.BoolVar(&versionFlag, "version", false, "Just show abom-hash version and exit.")
}

func ExitProtection() {
	status := recover()
	if status != nil {
		exit, ok := status.(common.ExitCode)
		if ok {
			exit.ShowMessage()
			common.WaitLogs()
			os.Exit(exit.Code)
		}
		common.WaitLogs()
		panic(status)
	}
	common.WaitLogs()
}

func process() {
	if versionFlag {
		common.Stdout("%s\n", common.Version)
		os.Exit(0)
	}
	files := flag.Args()
	pretty.Guard(len(files) > 0, 1, "Usage: abom-hash <file> ...")
	err := operations.HashFiles(files)
	if err != nil {
		pretty.Exit(1, "Error: %v", err)
	}
}

func main() {
	defer ExitProtection()
	pretty.Setup()

	flag.Parse()
	common.DefineVerbosity(false, debugFlag, traceFlag)
	process()
}
