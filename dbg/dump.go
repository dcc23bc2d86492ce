package dbg

import "github.com/davecgh/go-spew/spew"

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// Dump pretty prints values for verbose CLI output.
func Dump(values ...interface{}) string {
	return dumpConfig.Sdump(values...)
}
