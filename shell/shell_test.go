package shell_test

import (
	"runtime"
	"strings"
	"testing"

	"github.com/nickboucher/abom/hamlet"
	"github.com/nickboucher/abom/shell"
)

func TestSplitHandlesQuotesAndEscapes(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	parts, err := shell.Split(`clang -c "hello world.c" -o out.o`)
	must.Nil(err)
	must.Equal([]string{"clang", "-c", "hello world.c", "-o", "out.o"}, parts)

	parts, err = shell.Split(`gcc file\ with\ spaces.c`)
	must.Nil(err)
	must.Equal([]string{"gcc", "file with spaces.c"}, parts)
}

func TestCaptureOutputSeparatesStreams(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}

	out, code, err := shell.New(nil, ".", "/bin/sh", "-c", "echo visible").CaptureOutput()
	must.Nil(err)
	must.Equal(0, code)
	must.Equal("visible", strings.TrimSpace(out))

	errout, code, err := shell.New(nil, ".", "/bin/sh", "-c", "echo hidden 1>&2").CaptureStderr()
	must.Nil(err)
	must.Equal(0, code)
	must.Equal("hidden", strings.TrimSpace(errout))
}

func TestWithInterruptRunsTheTask(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	ran := false
	shell.WithInterrupt(func() {
		ran = true
	})
	must.True(ran)

	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	var code int
	var err error
	shell.WithInterrupt(func() {
		code, err = shell.New(nil, ".", "/bin/sh", "-c", "exit 7").Execute(false)
	})
	must.Equal(7, code)
	must.True(err != nil)
}

func TestExitCodesAreReported(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}

	code, err := shell.New(nil, ".", "/bin/sh", "-c", "exit 42").Execute(false)
	wont.Nil(err)
	must.Equal(42, code)
}
