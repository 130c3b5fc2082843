package operations

import (
	"encoding/json"
	"fmt"

	"github.com/nickboucher/abom/abom"
	"github.com/nickboucher/abom/common"
	"github.com/nickboucher/abom/pathlib"
	"github.com/nickboucher/abom/pretty"
)

// CheckReport is the structured form of one membership query.
type CheckReport struct {
	Binary     string `json:"binary"`
	Dependency string `json:"dependency"`
	Hash       string `json:"hash"`
	Present    bool   `json:"present"`
	Source     string `json:"source"`
	Filters    int    `json:"filters"`
}

// ResolveDependency turns the dependency argument into an ABOM hash. Hex
// of the right length is a hash; otherwise a path to an existing file gets
// hashed on the fly. A hash that also names a file counts as a hash, with
// a note, since that ambiguity has bitten people before.
func ResolveDependency(dependency string) (abom.Hash, error) {
	hash, err := abom.ParseHash(dependency)
	if err == nil {
		if pathlib.IsFile(dependency) {
			pretty.Note("%q is both a hash and an existing file; treating it as a hash.", dependency)
		}
		return hash, nil
	}
	if pathlib.IsFile(dependency) {
		return abom.HashFile(dependency)
	}
	return hash, fmt.Errorf("Invalid hash: %s.", dependency)
}

func exitForCarrier(err error) {
	if abom.IsFormatError(err) {
		pretty.Exit(4, "%v", err)
	}
	pretty.Exit(3, "%v", err)
}

// CheckDependency answers whether the dependency is recorded in the
// manifest carried by the binary, printing exactly "Present" or "Absent".
// The answer itself never changes the exit code.
func CheckDependency(binary, dependency string, jsonForm bool) {
	hash, err := ResolveDependency(dependency)
	if err != nil {
		pretty.Exit(2, "%v", err)
	}
	manifest, source, err := LoadCarrier(binary)
	if err != nil {
		exitForCarrier(err)
	}
	present := manifest.Contains(hash)
	if jsonForm {
		report := CheckReport{
			Binary:     binary,
			Dependency: dependency,
			Hash:       hash.String(),
			Present:    present,
			Source:     source,
			Filters:    manifest.Filters(),
		}
		content, err := json.MarshalIndent(report, "", "  ")
		pretty.GuardError("Report rendering failed", err)
		common.Stdout("%s\n", content)
		return
	}
	if present {
		common.Stdout("Present\n")
	} else {
		common.Stdout("Absent\n")
	}
}
