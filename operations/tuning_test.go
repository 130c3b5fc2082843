package operations_test

import (
	"testing"

	"github.com/nickboucher/abom/abom"
	"github.com/nickboucher/abom/hamlet"
	"github.com/nickboucher/abom/operations"
)

func TestTuneSweepMeasuresConfigurations(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	results, err := operations.TuneSweep([]int{1024}, []int{2}, []int{0, 64})
	must.Nil(err)
	must.Equal(2, len(results))

	empty, loaded := results[0], results[1]
	must.Equal(0, empty.Inserted)
	must.Equal(0, empty.Ones)
	must.Equal(abom.HeaderSize, empty.CompressedBytes)
	must.Equal(0.0, empty.EstimatedRate)

	must.Equal(64, loaded.Inserted)
	must.True(loaded.Ones > 0)
	must.True(loaded.Ones <= 2*64)
	must.True(loaded.CompressedBytes > abom.HeaderSize)
	must.True(loaded.EstimatedRate > 0)
	must.True(loaded.TheoreticalRate > 0)
	wont.True(loaded.Entropy == 0)
}

func TestTuneSweepIsDeterministic(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	once, err := operations.TuneSweep([]int{512, 1024}, []int{1, 2}, []int{32})
	must.Nil(err)
	again, err := operations.TuneSweep([]int{512, 1024}, []int{1, 2}, []int{32})
	must.Nil(err)
	must.Equal(once, again)
}
