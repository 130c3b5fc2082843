package settings

import (
	"encoding/json"
	"sync"

	"gopkg.in/yaml.v2"

	"github.com/nickboucher/abom/blobs"
	"github.com/nickboucher/abom/common"
	"github.com/nickboucher/abom/pathlib"
)

type Meta struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Source      string `yaml:"source" json:"source"`
	Version     string `yaml:"version" json:"version"`
}

type Toolchain struct {
	Compilers []string `yaml:"compilers" json:"compilers"`
	Archivers []string `yaml:"archivers" json:"archivers"`
	Objcopy   string   `yaml:"objcopy" json:"objcopy"`
	Linker    string   `yaml:"linker" json:"linker"`
}

type Options struct {
	EmbedSections bool `yaml:"embed-sections" json:"embedSections"`
	WarnMissing   bool `yaml:"warn-missing" json:"warnMissing"`
	CacheDigests  bool `yaml:"cache-digests" json:"cacheDigests"`
}

type Settings struct {
	Meta      *Meta      `yaml:"meta" json:"meta"`
	Toolchain *Toolchain `yaml:"toolchain" json:"toolchain"`
	Options   *Options   `yaml:"options" json:"options"`
}

func FromBytes(content []byte) (*Settings, error) {
	result := &Settings{}
	err := yaml.Unmarshal(content, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (it *Settings) AsYaml() ([]byte, error) {
	return yaml.Marshal(it)
}

func (it *Settings) AsJson() ([]byte, error) {
	return json.MarshalIndent(it, "", "  ")
}

func (it *Settings) Source(origin string) *Settings {
	if it.Meta != nil {
		it.Meta.Source = origin
	}
	return it
}

func defaultSettings() (*Settings, error) {
	content, err := blobs.Asset(common.Product.DefaultSettingsYamlFile())
	if err != nil {
		return nil, err
	}
	return FromBytes(content)
}

func customSettings() (*Settings, bool) {
	location := common.SettingsFile()
	if !pathlib.IsFile(location) {
		return nil, false
	}
	content, err := pathlib.ReadFile(location)
	if err != nil {
		common.Log("Warning: could not read %q, reason: %v", location, err)
		return nil, false
	}
	custom, err := FromBytes(content)
	if err != nil {
		common.Log("Warning: could not parse %q, reason: %v", location, err)
		return nil, false
	}
	return custom.Source(location), true
}

var (
	settingsLock sync.Mutex
	active       *Settings
)

// SummonSettings loads the builtin settings and overlays the custom
// settings file section by section when one exists under the product
// home. A section in the custom file replaces the builtin section
// wholly.
func SummonSettings() (*Settings, error) {
	settingsLock.Lock()
	defer settingsLock.Unlock()
	if active != nil {
		return active, nil
	}
	base, err := defaultSettings()
	if err != nil {
		return nil, err
	}
	custom, ok := customSettings()
	if ok {
		if custom.Meta != nil {
			base.Meta = custom.Meta
		}
		if custom.Toolchain != nil {
			base.Toolchain = custom.Toolchain
		}
		if custom.Options != nil {
			base.Options = custom.Options
		}
	}
	active = base
	return active, nil
}
