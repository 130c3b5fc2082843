package pretty_test

import (
	"testing"

	"github.com/nickboucher/abom/hamlet"
	"github.com/nickboucher/abom/pretty"
)

func TestSpinnerLifecycle(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	spinner := pretty.NewSpinner("hashing dependencies")
	wont.True(spinner.IsRunning())

	spinner.Start()
	must.True(spinner.IsRunning())

	spinner.Start()
	must.True(spinner.IsRunning())

	spinner.Update(0, "still hashing")
	spinner.Stop(true)
	wont.True(spinner.IsRunning())

	spinner.Stop(false)
	wont.True(spinner.IsRunning())
}

func TestProgressBarLifecycle(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	bar := pretty.NewProgressBar("measuring configurations", 10)
	wont.True(bar.IsRunning())

	bar.Stop(true)
	wont.True(bar.IsRunning())

	bar.Start()
	must.True(bar.IsRunning())
	for done := int64(1); done <= 10; done++ {
		bar.Update(done, "")
	}
	bar.Stop(true)
	wont.True(bar.IsRunning())
}
