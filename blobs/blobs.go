package blobs

import (
	"embed"
	"fmt"
)

//go:embed assets/*.yaml assets/man/*.txt
var content embed.FS

func Asset(name string) ([]byte, error) {
	body, err := content.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("missing asset %q, reason: %w", name, err)
	}
	return body, nil
}

func MustAsset(name string) []byte {
	body, err := Asset(name)
	if err != nil {
		panic(err)
	}
	return body
}

func AssetNames(folder string) []string {
	entries, err := content.ReadDir(folder)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names
}
