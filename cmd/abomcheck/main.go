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
	jsonFlag    bool
)

func init() {
	flag.BoolVar(&debugFlag, "debug", false, "Turn on debugging output.")
	flag.BoolVar(&traceFlag, "trace", false, "Turn on tracing output.")
	flag.BoolVar(&versionFlag, "version", false, "Just show abom-check version and exit.")
	flag.BoolVar(&jsonFlag, "json", false, "Print a structured report instead of Present/Absent.")
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
	args := flag.Args()
	pretty.Guard(len(args) == 2, 1, "Usage: abom-check <binary> <dependency>")
	operations.CheckDependency(args[0], args[1], jsonFlag)
}

func main() {
	defer ExitProtection()
	pretty.Setup()

	flag.Parse()
	common.DefineVerbosity(false, debugFlag, traceFlag)
	process()
}
