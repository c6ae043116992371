//go:build !amd64 && !arm64

package hwy

func init() {
	hostLevel = detectHostLevel(NoSimdEnv())
}

// detectHostLevel reports scalar: no native backend exists for this
// architecture.
func detectHostLevel(bool) DispatchLevel {
	return DispatchScalar
}
