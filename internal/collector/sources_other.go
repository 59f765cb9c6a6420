//go:build !linux && !windows

package collector

// Only the gopsutil facilities and the shell are available here; display,
// chassis and battery categories report unreachable.
func addPlatformSources(s *Sources, opts SourceOptions) {
	s.Desktop = envDesktop{shellVar: "SHELL"}
}
