package operations

import (
	"encoding/json"

	"github.com/nickboucher/abom/abom"
	"github.com/nickboucher/abom/common"
	"github.com/nickboucher/abom/pretty"
)

// DumpReport is the structured form of one manifest inspection.
type DumpReport struct {
	Binary string `json:"binary"`
	Source string `json:"source"`
	*abom.Report
}

// DumpArtifact decodes the manifest carried by the binary and reports its
// header fields, filter saturations, and payload sizes. An optional raw
// target receives a copy of the serialized payload.
func DumpArtifact(binary string, jsonForm bool, rawTarget string) {
	manifest, source, err := LoadCarrier(binary)
	if err != nil {
		exitForCarrier(err)
	}
	report, err := manifest.Report()
	pretty.GuardError("Manifest inspection failed", err)
	if len(rawTarget) > 0 {
		err := manifest.DumpFile(rawTarget)
		pretty.GuardError("Raw payload write failed", err)
		common.Log("Raw payload written to %v", rawTarget)
	}
	if jsonForm {
		content, err := json.MarshalIndent(DumpReport{Binary: binary, Source: source, Report: report}, "", "  ")
		pretty.GuardError("Report rendering failed", err)
		common.Stdout("%s\n", content)
		return
	}
	common.Stdout("Binary:   %s\n", binary)
	common.Stdout("Source:   %s\n", source)
	common.Stdout("Version:  %d\n", report.Version)
	common.Stdout("Filters:  %d\n", report.Filters)
	common.Stdout("Set bits: %d (probability %.6f)\n", report.Ones, report.OnesProbability)
	common.Stdout("Size:     %d header + %d payload = %d bytes\n", report.HeaderBytes, report.PayloadBytes, report.TotalBytes)
	for at, filter := range report.Detail {
		common.Stdout("  filter %d: %d/%d bits set, saturation %.4f%%, estimated fpr %.3g\n",
			at, filter.Ones, filter.Size, 100*filter.Saturation, filter.FalsePositiveRate)
	}
}
