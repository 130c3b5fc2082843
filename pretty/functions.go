package pretty

import (
	"fmt"

	"github.com/nickboucher/abom/common"
)

func Ok() error {
	common.Log("%sOK.%s", Green, Reset)
	return nil
}

// Exit panics an ExitCode, which ExitProtection in main converts into a
// process exit with the given code. The error return lets RunE handlers
// say "return pretty.Exit(...)".
func Exit(code int, format string, rest ...interface{}) error {
	var message string
	if len(rest) > 0 {
		message = fmt.Sprintf(format, rest...)
	} else {
		message = format
	}
	panic(common.ExitCode{Code: code, Message: message})
}

// Guard lets only acceptable conditions continue.
func Guard(condition bool, code int, format string, rest ...interface{}) {
	if !condition {
		Exit(code, format, rest...)
	}
}

func GuardError(context string, err error) {
	if err != nil {
		Exit(1, "%s: %v", context, err)
	}
}

func Warning(format string, rest ...interface{}) {
	common.Log("%sWarning: %s%s", Yellow, fmt.Sprintf(format, rest...), Reset)
}

func Note(format string, rest ...interface{}) {
	common.Log("%sNote: %s%s", Cyan, fmt.Sprintf(format, rest...), Reset)
}

func Highlight(format string, rest ...interface{}) {
	common.Log("%s%s%s", Bold, fmt.Sprintf(format, rest...), Reset)
}

func Lowlight(format string, rest ...interface{}) {
	common.Log("%s%s%s", Faint, fmt.Sprintf(format, rest...), Reset)
}
