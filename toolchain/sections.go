package toolchain

import (
	"bytes"
	"fmt"
	"os"

	"github.com/nickboucher/abom/common"
	"github.com/nickboucher/abom/shell"
)

const (
	// SectionName is the segment,section pair carrying the manifest. The
	// same literal names the section on ELF targets.
	SectionName = "__ABOM,__abom"

	// staleSectionName is what older objcopy versions left behind when
	// the segment part got dropped; removal cleans both spellings.
	staleSectionName = ",__abom"

	segmentPart = "__ABOM"
	sectionPart = "__abom"
)

// DumpSection copies the manifest section of the binary into the payload
// file. A false answer means the binary carries no such section.
func DumpSection(binary, payload string) bool {
	code, err := runQuietly(Objcopy(), fmt.Sprintf("--dump-section=%s=%s", SectionName, payload), binary)
	return code == 0 && err == nil
}

// RemoveSections strips previously embedded manifest sections from the
// binary, so that rebuilding cannot stack stale copies.
func RemoveSections(binary string) error {
	code, err := runQuietly(Objcopy(),
		fmt.Sprintf("--remove-section=%s", SectionName),
		fmt.Sprintf("--remove-section=%s", staleSectionName),
		binary)
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("Section removal from %q exited %d.", binary, code)
	}
	return nil
}

// AddSection embeds the payload file into the binary as the manifest
// section. Works on executables and dynamic libraries.
func AddSection(binary, payload string) error {
	code, err := runQuietly(Objcopy(), fmt.Sprintf("--add-section=%s=%s", SectionName, payload), binary)
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("Section addition to %q exited %d.", binary, code)
	}
	return nil
}

// CreateSection embeds the payload into a relocatable object by relinking
// it in place, since objcopy cannot add sections to Mach-O objects.
func CreateSection(object, payload string) error {
	code, err := runQuietly(Linker(), "-r", "-sectcreate", segmentPart, sectionPart, payload, object, "-o", object)
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("Section creation in %q exited %d.", object, code)
	}
	return nil
}

// runQuietly executes a bookkeeping tool with both output streams captured,
// surfacing them only in debug logging. Bookkeeping noise must not pollute
// the wrapped build's output.
func runQuietly(argv ...string) (int, error) {
	output := bytes.Buffer{}
	code, err := shell.New(os.Environ(), ".", argv...).Observed(&output, false)
	if code != 0 || err != nil {
		common.Debug("Tool %q exited %d (%v), output: %s", argv[0], code, err, output.String())
	}
	return code, err
}
