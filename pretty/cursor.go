package pretty

import (
	"os"

	"github.com/nickboucher/abom/common"

	"golang.org/x/term"
)

// Cursor control with CSI escapes. Every function is a no-op outside of
// interactive terminals.

func HideCursor() {
	if !Interactive {
		return
	}
	common.Stdout("%s", csif("?25l"))
}

func ShowCursor() {
	if !Interactive {
		return
	}
	common.Stdout("%s", csif("?25h"))
}

func ClearLine() {
	if !Interactive {
		return
	}
	common.Stdout("%s", csif("2K"))
}

func ClearToEnd() {
	if !Interactive {
		return
	}
	common.Stdout("%s", csif("0K"))
}

func MoveUp(n int) {
	if !Interactive || n <= 0 {
		return
	}
	common.Stdout("%s", csif("%dA", n))
}

func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

func TerminalHeight() int {
	_, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || height <= 0 {
		return 24
	}
	return height
}
