package pretty

import "fmt"

func csi(ending string) string {
	return fmt.Sprintf("\033[%s", ending)
}

func csif(form string, details ...interface{}) string {
	return csi(fmt.Sprintf(form, details...))
}
