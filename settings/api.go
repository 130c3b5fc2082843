package settings

import (
	"github.com/nickboucher/abom/pretty"
)

// Global is the gateway other packages use to read effective settings.
var Global gateway

type gateway struct{}

func (it gateway) summon() *Settings {
	config, err := SummonSettings()
	pretty.Guard(err == nil, 1, "Could not summon settings, reason: %v", err)
	return config
}

func (it gateway) Name() string {
	return it.summon().Meta.Name
}

func (it gateway) Description() string {
	return it.summon().Meta.Description
}

func (it gateway) Compilers() []string {
	return it.summon().Toolchain.Compilers
}

func (it gateway) Archivers() []string {
	return it.summon().Toolchain.Archivers
}

func (it gateway) ObjcopyTool() string {
	return it.summon().Toolchain.Objcopy
}

func (it gateway) LinkerTool() string {
	return it.summon().Toolchain.Linker
}

func (it gateway) EmbedSections() bool {
	return it.summon().Options.EmbedSections
}

func (it gateway) WarnMissing() bool {
	return it.summon().Options.WarnMissing
}

func (it gateway) CacheDigests() bool {
	return it.summon().Options.CacheDigests
}
