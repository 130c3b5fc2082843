package xviper

import (
	"path/filepath"
	"sync"

	"github.com/spf13/viper"

	"github.com/nickboucher/abom/common"
	"github.com/nickboucher/abom/pathlib"
)

var (
	lock     sync.Mutex
	instance *viper.Viper
	location string
)

// summon lazily binds the viper instance to the persistent configuration
// file under the product home.
func summon() *viper.Viper {
	lock.Lock()
	defer lock.Unlock()
	if instance == nil {
		instance = viper.New()
		location = common.ConfigFile()
		instance.SetConfigFile(location)
		if pathlib.IsFile(location) {
			err := instance.ReadInConfig()
			if err != nil {
				common.Debug("Could not read configuration %q, reason: %v", location, err)
			}
		}
	}
	return instance
}

func save() {
	err := pathlib.EnsureDirectoryExists(filepath.Dir(location))
	if err == nil {
		err = instance.WriteConfigAs(location)
	}
	if err != nil {
		common.Debug("Could not save configuration %q, reason: %v", location, err)
	}
}

func Set(key string, value interface{}) {
	summon().Set(key, value)
	save()
}

func Get(key string) interface{} {
	return summon().Get(key)
}

func GetString(key string) string {
	return summon().GetString(key)
}

func GetBool(key string) bool {
	return summon().GetBool(key)
}

func IsSet(key string) bool {
	return summon().IsSet(key)
}

func AllKeys() []string {
	return summon().AllKeys()
}

// Location returns the configuration file path once summoned.
func Location() string {
	summon()
	return location
}
