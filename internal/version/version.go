package version

import (
	"fmt"
	"runtime/debug"
)

// Version of the build
type Version struct {
	Build   string
	Runtime string
}

// set by the linker: -X github.com/effective-security/xjwt/internal/version.current=v1.2.3
var current string

// Current returns the current version
func Current() Version {
	v := Version{
		Build: current,
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		v.Runtime = info.GoVersion
		if v.Build == "" {
			v.Build = info.Main.Version
		}
	}
	if v.Build == "" {
		v.Build = "devel"
	}
	return v
}

func (v Version) String() string {
	if v.Runtime == "" {
		return v.Build
	}
	return fmt.Sprintf("%s (%s)", v.Build, v.Runtime)
}
