package xviper_test

import (
	"testing"

	"github.com/nickboucher/abom/common"
	"github.com/nickboucher/abom/hamlet"
	"github.com/nickboucher/abom/xviper"
)

func TestJournalConsentIsOptIn(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	common.Product.ForceHome(t.TempDir())
	defer common.Product.ForceHome("")

	wont.True(xviper.JournalEnabled())

	xviper.ConsentJournal(true)
	must.True(xviper.JournalEnabled())

	xviper.ConsentJournal(false)
	wont.True(xviper.JournalEnabled())
}

func TestInstanceIdentityIsStable(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	common.Product.ForceHome(t.TempDir())
	defer common.Product.ForceHome("")

	identity := xviper.InstanceIdentity()
	wont.True(len(identity) == 0)
	must.Equal(identity, xviper.InstanceIdentity())
}
