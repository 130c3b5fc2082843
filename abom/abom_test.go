package abom_test

import (
	"fmt"
	"testing"

	"github.com/nickboucher/abom/abom"
	"github.com/nickboucher/abom/hamlet"
)

func syntheticHashes(prefix string, count int) []abom.Hash {
	hashes := make([]abom.Hash, count)
	for at := range hashes {
		hashes[at] = abom.HashBytes([]byte(fmt.Sprintf("%s-%d", prefix, at)))
	}
	return hashes
}

func TestInsertedHashesAreContained(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	container := abom.New()
	inserted := syntheticHashes("dep", 100)
	for _, hash := range inserted {
		container.Insert(hash)
	}
	must.Equal(1, container.Filters())
	for _, hash := range inserted {
		must.True(container.Contains(hash))
	}
	wont.True(container.Contains(abom.HashBytes([]byte("never inserted"))))
}

func TestSaturatedFilterOverflowsIntoFresh(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	container := abom.New()
	inserted := syntheticHashes("overflow", 1200)
	for _, hash := range inserted {
		container.Insert(hash)
	}
	must.Equal(2, container.Filters())
	for _, hash := range inserted {
		must.True(container.Contains(hash))
	}
}

func TestUnionFoldsSmallContainers(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	left, right := abom.New(), abom.New()
	ours := syntheticHashes("ours", 10)
	theirs := syntheticHashes("theirs", 10)
	for _, hash := range ours {
		left.Insert(hash)
	}
	for _, hash := range theirs {
		right.Insert(hash)
	}

	left.Union(right)
	must.Equal(1, left.Filters())
	for _, hash := range append(ours, theirs...) {
		must.True(left.Contains(hash))
	}
	must.Equal(1, right.Filters())
}

func TestUnionAppendsWhenFoldWouldSaturate(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	left, right := abom.New(), abom.New()
	ours := syntheticHashes("ours", 700)
	theirs := syntheticHashes("theirs", 700)
	for _, hash := range ours {
		left.Insert(hash)
	}
	for _, hash := range theirs {
		right.Insert(hash)
	}
	must.Equal(1, left.Filters())
	must.Equal(1, right.Filters())

	left.Union(right)
	must.Equal(2, left.Filters())
	for _, hash := range append(ours, theirs...) {
		must.True(left.Contains(hash))
	}
}

func TestUnionLeavesSourceIndependent(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	left, right := abom.New(), abom.New()
	for _, hash := range syntheticHashes("seed", 700) {
		right.Insert(hash)
	}
	left.Union(right)

	extra := abom.HashBytes([]byte("added after the union"))
	left.Insert(extra)
	must.True(left.Contains(extra))
	wont.True(right.Contains(extra))
}

func TestEmptyContainerContainsNothing(t *testing.T) {
	_, wont := hamlet.Specifications(t)

	container := abom.New()
	wont.True(container.Contains(abom.HashBytes([]byte("anything"))))
}

func TestReportSummarizesFilters(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	container := abom.New()
	container.Insert(abom.HashBytes(nil))
	container.Insert(abom.HashBytes([]byte("abc")))

	report, err := container.Report()
	must.Nil(err)
	must.Equal(abom.ProtocolVersion, report.Version)
	must.Equal(1, report.Filters)
	must.Equal(4, report.Ones)
	must.Equal(abom.HeaderSize, report.HeaderBytes)
	must.True(report.PayloadBytes > 0)
	must.Equal(report.HeaderBytes+report.PayloadBytes, report.TotalBytes)
	must.Equal(1, len(report.Detail))
	must.Equal(4, report.Detail[0].Ones)
	must.Equal(abom.FilterSize, report.Detail[0].Size)
}
