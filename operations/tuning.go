package operations

import (
	"encoding/binary"
	"encoding/json"
	"math"
	"sort"
	"sync"

	"golang.org/x/crypto/sha3"

	"github.com/nickboucher/abom/abom"
	"github.com/nickboucher/abom/anywork"
	"github.com/nickboucher/abom/bloom"
	"github.com/nickboucher/abom/common"
	"github.com/nickboucher/abom/fail"
	"github.com/nickboucher/abom/pathlib"
	"github.com/nickboucher/abom/pretty"
)

// TuneResult measures one Bloom filter configuration: estimated and
// theoretical false positive rates after Mitzenmacher, plus actual and
// ideal compressed sizes.
type TuneResult struct {
	Size            int     `json:"m"`
	Probes          int     `json:"k"`
	Inserted        int     `json:"n"`
	EstimatedRate   float64 `json:"fpr"`
	ZeroProbability float64 `json:"p"`
	TheoreticalRate float64 `json:"f"`
	Ones            int     `json:"ones"`
	CompressedBytes int     `json:"s_bytes"`
	Entropy         float64 `json:"h"`
	IdealBytes      float64 `json:"z_bytes"`
}

// TuneSweep measures every (size, probes, count) combination on the worker
// pool and returns the results in deterministic order.
func TuneSweep(sizes, probes, counts []int) (results []TuneResult, err error) {
	defer fail.Around(&err)
	defer common.Stopwatch("Tuning sweep of %d configurations took", len(sizes)*len(probes)*len(counts)).Debug()

	total := len(sizes) * len(probes) * len(counts)
	var progress pretty.ProgressIndicator
	if pretty.Interactive && total > 1 {
		progress = pretty.NewProgressBar("Measuring configurations", int64(total))
		progress.Start()
	}

	results = make([]TuneResult, 0, total)
	mutex := sync.Mutex{}
	for _, size := range sizes {
		for _, count := range probes {
			for _, inserted := range counts {
				size, count, inserted := size, count, inserted
				anywork.Backlog(func() {
					entry, failure := measure(size, count, inserted)
					anywork.OnErrPanicCloseAll(failure)
					mutex.Lock()
					results = append(results, entry)
					done := len(results)
					mutex.Unlock()
					if progress != nil {
						progress.Update(int64(done), "")
					}
				})
			}
		}
	}
	failure := anywork.Sync()
	if progress != nil {
		progress.Stop(failure == nil)
	}
	fail.Fast(failure)
	sort.Slice(results, func(left, right int) bool {
		if results[left].Size != results[right].Size {
			return results[left].Size < results[right].Size
		}
		if results[left].Probes != results[right].Probes {
			return results[left].Probes < results[right].Probes
		}
		return results[left].Inserted < results[right].Inserted
	})
	return results, nil
}

func measure(size, probes, inserted int) (TuneResult, error) {
	filter, err := bloom.NewFilter(size, probes)
	if err != nil {
		return TuneResult{}, err
	}
	material := make([]byte, 8)
	for at := 0; at < inserted; at++ {
		binary.LittleEndian.PutUint64(material, uint64(at))
		digest := sha3.Sum256(material)
		filter.Insert(digest[:])
	}
	zero := math.Pow(1-1/float64(size), float64(probes*inserted))
	entropy := 0.0
	if inserted > 0 && zero > 0 && zero < 1 {
		entropy = -zero*math.Log2(zero) - (1-zero)*math.Log2(1-zero)
	}
	return TuneResult{
		Size:            size,
		Probes:          probes,
		Inserted:        inserted,
		EstimatedRate:   filter.FalsePositiveRate(),
		ZeroProbability: zero,
		TheoreticalRate: math.Pow(1-zero, float64(probes)),
		Ones:            filter.Ones(),
		CompressedBytes: compressedSize(filter),
		Entropy:         entropy,
		IdealBytes:      entropy * float64(size) / 8,
	}, nil
}

// compressedSize runs the filter bits through the same range coder that
// serialization uses, measuring what this configuration would cost on the
// wire. Degenerate filters carry an empty blob.
func compressedSize(filter *bloom.Filter) int {
	ones := filter.Ones()
	if ones == 0 || ones == filter.Size() {
		return abom.HeaderSize
	}
	scaled := uint32(math.Round(float64(ones) / float64(filter.Size()) * math.MaxUint32))
	encoder := bloom.NewRangeEncoder(bloom.ZeroProbability(scaled))
	for index := 0; index < filter.Size(); index++ {
		encoder.Encode(filter.Bit(index))
	}
	return abom.HeaderSize + len(encoder.Finish())
}

// TuneReport prints the sweep as a table, names the smallest configurations
// still under the production false positive ceiling, and optionally saves
// everything as JSON for downstream analysis.
func TuneReport(results []TuneResult, top int, jsonTarget string) {
	if len(jsonTarget) > 0 {
		content, err := json.MarshalIndent(results, "", "  ")
		pretty.GuardError("Result rendering failed", err)
		err = pathlib.WriteFile(jsonTarget, append(content, '\n'), 0o644)
		pretty.GuardError("Result write failed", err)
		common.Log("Sweep results written to %v", jsonTarget)
	}
	common.Stdout("%10s %3s %8s  %12s %12s %8s %10s %10s\n",
		"m", "k", "n", "fpr", "f", "ones", "bytes", "ideal")
	for _, entry := range results {
		common.Stdout("%10d %3d %8d  %12.3g %12.3g %8d %10d %10.0f\n",
			entry.Size, entry.Probes, entry.Inserted, entry.EstimatedRate,
			entry.TheoreticalRate, entry.Ones, entry.CompressedBytes, entry.IdealBytes)
	}
	usable := make([]TuneResult, 0, len(results))
	for _, entry := range results {
		if entry.EstimatedRate < abom.MaxFalsePositiveRate {
			usable = append(usable, entry)
		}
	}
	sort.Slice(usable, func(left, right int) bool {
		return usable[left].CompressedBytes < usable[right].CompressedBytes
	})
	if top > len(usable) {
		top = len(usable)
	}
	if top > 0 {
		common.Stdout("\nTop %d configurations under the fpr ceiling %.3g:\n", top, float64(abom.MaxFalsePositiveRate))
		for _, entry := range usable[:top] {
			common.Stdout("  m=%d k=%d n=%d: %d bytes at fpr %.3g\n",
				entry.Size, entry.Probes, entry.Inserted, entry.CompressedBytes, entry.EstimatedRate)
		}
	}
}
