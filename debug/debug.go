// Package debug gates trace output on FPATH_DEBUG_* environment
// variables.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Scan  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("FPATH_DEBUG_PARSE")
	d.Scan = boolEnv("FPATH_DEBUG_SCAN")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Scan() bool {
	return d.Scan
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
