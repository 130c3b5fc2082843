package operations

import (
	"github.com/nickboucher/abom/abom"
	"github.com/nickboucher/abom/common"
	"github.com/nickboucher/abom/pathlib"
	"github.com/nickboucher/abom/pretty"
)

// MergeCarriers unions the manifests of arbitrary carriers, raw payloads,
// sidecars, and embedded sections alike, into one standalone sidecar file.
// Unlike wrapped builds, an input without a manifest is an error here: the
// user named it on purpose.
func MergeCarriers(output string, inputs []string) {
	pretty.Guard(len(inputs) > 0, 1, "At least one input carrier is needed.")
	manifest := abom.New()
	for _, input := range inputs {
		pretty.Guard(pathlib.IsFile(input), 1, "No such file: %v", input)
		carried, source, ok := loadAnyCarrier(input)
		pretty.Guard(ok, 3, "Input lacks ABOM: %s", input)
		common.Debug("Merging %s manifest of %v", source, input)
		manifest.Union(carried)
	}
	err := manifest.DumpFile(output)
	pretty.GuardError("Merged manifest write failed", err)
	common.Log("Merged %d carriers into %v (%d filters, %d bits set)",
		len(inputs), output, manifest.Filters(), manifest.Ones())
}
