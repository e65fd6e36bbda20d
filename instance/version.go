package instance

import (
	"runtime/debug"
	"strings"
	"sync"
)

var version = sync.OnceValue(loadVersion)

func Version() string {
	return version()
}

func loadVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "0.0.0-development+unknown"
	}
	v := bi.Main.Version
	for _, s := range bi.Settings {
		if s.Key != "vcs.revision" || s.Value == "" {
			continue
		}
		rev := s.Value
		if len(rev) > 8 {
			rev = rev[:8]
		}
		// go pseudo-versions often contain the git hash already
		if !strings.Contains(v, rev) {
			v += "+" + rev
		}
	}
	return v
}
