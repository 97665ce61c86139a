package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Walk    bool
	Plugins bool
}

var d *debug

func init() {
	d = &debug{}
	d.Walk = boolEnv("TERSIFY_DEBUG_WALK")
	d.Plugins = boolEnv("TERSIFY_DEBUG_PLUGINS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Walk() bool {
	return d.Walk
}
func Plugins() bool {
	return d.Plugins
}
