package journal_test

import (
	"testing"

	"github.com/nickboucher/abom/common"
	"github.com/nickboucher/abom/hamlet"
	"github.com/nickboucher/abom/journal"
	"github.com/nickboucher/abom/xviper"
)

func TestBuildEventsRoundtrip(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	common.Product.ForceHome(t.TempDir())
	defer common.Product.ForceHome("")

	before, err := journal.BuildEvents()
	must.Nil(err)
	must.Equal(0, len(before))

	xviper.ConsentJournal(true)
	event := journal.CurrentBuildEvent()
	event.Action = "compile"
	event.Tool = "clang"
	event.Output = "hello"
	event.Dependencies = 42
	event.Filters = 1
	must.Nil(event.Save())

	after, err := journal.BuildEvents()
	must.Nil(err)
	must.True(len(after) > 0)
	last := after[len(after)-1]
	must.Equal("compile", last.Action)
	must.Equal("clang", last.Tool)
	must.Equal(42, last.Dependencies)
	wont.True(len(last.Elapsed) == 0)
}

func TestBuildEventSkipsWithoutConsent(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	common.Product.ForceHome(t.TempDir())
	defer common.Product.ForceHome("")

	xviper.ConsentJournal(false)
	event := journal.CurrentBuildEvent()
	event.Action = "archive"
	must.Nil(event.Save())

	events, err := journal.BuildEvents()
	must.Nil(err)
	must.Equal(0, len(events))
}
