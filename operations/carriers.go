package operations

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nickboucher/abom/abom"
	"github.com/nickboucher/abom/common"
	"github.com/nickboucher/abom/pathlib"
	"github.com/nickboucher/abom/pretty"
	"github.com/nickboucher/abom/settings"
	"github.com/nickboucher/abom/toolchain"
)

// Carrier source names, as reported by check and dump.
const (
	SourceSidecar = `sidecar`
	SourceSection = `section`
	SourcePayload = `payload`
)

func temporaryPayload() string {
	return filepath.Join(pathlib.TempDir(), fmt.Sprintf("abom_%s.payload", <-common.Identities))
}

func loadSidecar(artifact string) (*abom.ABOM, bool) {
	location := abom.Sidecar(artifact)
	if !pathlib.IsFile(location) {
		return nil, false
	}
	manifest, err := abom.LoadFile(location)
	if err != nil {
		common.Debug("Could not load sidecar %q, reason: %v", location, err)
		return nil, false
	}
	common.Debug("Using dedicated sidecar instead of embedded section: %v", location)
	return manifest, true
}

func loadSection(artifact string) (*abom.ABOM, bool) {
	payload := temporaryPayload()
	defer os.Remove(payload)
	if !toolchain.DumpSection(artifact, payload) {
		return nil, false
	}
	manifest, err := abom.LoadFile(payload)
	if err != nil {
		common.Debug("Could not load embedded manifest of %q, reason: %v", artifact, err)
		return nil, false
	}
	return manifest, true
}

// LoadCarrier finds the manifest carried by the artifact, sidecar first,
// embedded section second. A carried payload that exists but does not
// decode surfaces as a format error, a missing carrier as a plain one.
func LoadCarrier(artifact string) (*abom.ABOM, string, error) {
	if manifest, ok := loadSidecar(artifact); ok {
		return manifest, SourceSidecar, nil
	}
	payload := temporaryPayload()
	defer os.Remove(payload)
	if !toolchain.DumpSection(artifact, payload) {
		return nil, "", fmt.Errorf("Input lacks ABOM: %s", artifact)
	}
	manifest, err := abom.LoadFile(payload)
	if err != nil {
		if abom.IsFormatError(err) {
			return nil, "", fmt.Errorf("Undecodable ABOM in %s: %w", artifact, err)
		}
		return nil, "", fmt.Errorf("Input lacks ABOM: %s", artifact)
	}
	return manifest, SourceSection, nil
}

// loadAnyCarrier additionally accepts files that are raw serialized
// payloads themselves, which is what merge inputs may be.
func loadAnyCarrier(artifact string) (*abom.ABOM, string, bool) {
	if manifest, err := abom.LoadFile(artifact); err == nil {
		return manifest, SourcePayload, true
	}
	if manifest, ok := loadSidecar(artifact); ok {
		return manifest, SourceSidecar, true
	}
	if manifest, ok := loadSection(artifact); ok {
		return manifest, SourceSection, true
	}
	return nil, "", false
}

// unionCarried folds the manifests of the given input files into the
// manifest. Arguments that do not name existing files (linker flags and
// such) are skipped, and the output file never feeds itself. Inputs
// without any carrier are warnings, not errors.
func unionCarried(manifest *abom.ABOM, files []string, output, operation string) (merged, warnings int) {
	for _, option := range files {
		if option == output || !pathlib.IsFile(option) {
			continue
		}
		if carried, ok := loadSidecar(option); ok {
			manifest.Union(carried)
			merged++
			continue
		}
		if carried, ok := loadSection(option); ok {
			common.Debug("Merging embedded manifest: %v", option)
			manifest.Union(carried)
			merged++
			continue
		}
		warnings++
		if settings.Global.WarnMissing() {
			pretty.Warning("%s object lacks ABOM: %v", operation, option)
		}
	}
	return merged, warnings
}

func writeSidecar(manifest *abom.ABOM, output string) (ok bool) {
	location := abom.Sidecar(output)
	err := manifest.DumpFile(location)
	if err != nil {
		pretty.Warning("Failed to write sidecar %q, reason: %v", location, err)
		return false
	}
	common.Debug("Sidecar manifest written: %v", location)
	return true
}

// EmbedManifest attaches the manifest to the built output. Assembly
// builds and disabled embedding always go to a sidecar; otherwise the
// artifact kind picks the section strategy, and a failed embedding
// degrades to a sidecar with a warning instead of failing the build.
func EmbedManifest(manifest *abom.ABOM, output string, assembly bool) (sidecar bool, warnings int) {
	if err := toolchain.RemoveSections(output); err != nil {
		warnings++
		pretty.Warning("Failed to remove stale ABOM sections from %q, reason: %v", output, err)
	}
	if assembly || !settings.Global.EmbedSections() {
		return writeSidecar(manifest, output), warnings
	}
	payload := temporaryPayload()
	defer os.Remove(payload)
	err := manifest.DumpFile(payload)
	if err != nil {
		pretty.Warning("Failed to serialize manifest for %q, reason: %v", output, err)
		return false, warnings + 1
	}
	kind, err := toolchain.Classify(output)
	if err != nil {
		pretty.Warning("Failed to classify output %q, reason: %v", output, err)
		return writeSidecar(manifest, output), warnings + 1
	}
	common.Debug("Output %q classified as %v.", output, kind)
	switch kind {
	case toolchain.ObjectKind:
		err = toolchain.CreateSection(output, payload)
	default:
		err = toolchain.AddSection(output, payload)
	}
	if err != nil {
		pretty.Warning("Failed to embed ABOM section into %q, reason: %v", output, err)
		return writeSidecar(manifest, output), warnings + 1
	}
	return false, warnings
}
