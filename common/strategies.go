package common

import "os"

const (
	ABOM_HOME_VARIABLE = `ABOM_HOME`
	ABOM_NAME          = `ABOM`
)

type (
	ProductStrategy interface {
		Name() string
		ForceHome(string)
		HomeVariable() string
		Home() string
		DefaultSettingsYamlFile() string
	}

	abomStrategy struct {
		forcedHome string
	}
)

func AbomMode() ProductStrategy {
	return &abomStrategy{}
}

func (it *abomStrategy) Name() string {
	return ABOM_NAME
}

func (it *abomStrategy) ForceHome(value string) {
	it.forcedHome = value
}

func (it *abomStrategy) HomeVariable() string {
	return ABOM_HOME_VARIABLE
}

func (it *abomStrategy) Home() string {
	if len(it.forcedHome) > 0 {
		return ExpandPath(it.forcedHome)
	}
	home := os.Getenv(ABOM_HOME_VARIABLE)
	if len(home) > 0 {
		return ExpandPath(home)
	}
	return ExpandPath(defaultProductLocation)
}

func (it *abomStrategy) DefaultSettingsYamlFile() string {
	return "assets/abom_settings.yaml"
}
