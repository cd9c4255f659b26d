package doctor

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// archAliases maps Go architecture names to the uname naming that catalog
// requirement lists use (the original catalogs say x86_64, not amd64).
var archAliases = map[string]string{
	"amd64": "x86_64",
	"386":   "i386",
}

func normalizeArch(arch string) string {
	if a, ok := archAliases[arch]; ok {
		return a
	}
	return arch
}

// Info gathers the system descriptor for the report. gopsutil fills in the
// OS version; the runtime package covers everything it cannot.
func Info() SystemInfo {
	info := SystemInfo{
		OS:           runtime.GOOS,
		Architecture: normalizeArch(runtime.GOARCH),
	}
	if name, err := os.Hostname(); err == nil {
		info.Hostname = name
	}
	if hi, err := host.Info(); err == nil {
		info.OSVersion = hi.PlatformVersion
		if hi.Hostname != "" {
			info.Hostname = hi.Hostname
		}
	}
	return info
}
