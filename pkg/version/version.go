// Package version derives the application version from build metadata.
package version

import "runtime/debug"

// AppName is used in version strings and log output.
const AppName = "maskgate"

// commitOverride is set via -ldflags for builds where .git is unavailable
// (container builds). Empty means no override.
var commitOverride string

// GitCommit identifies the build: the -ldflags override if set, otherwise
// the VCS revision from build info ("-dirty" when the tree was modified),
// otherwise "dev" (go test, non-git builds).
var GitCommit = resolveCommit(commitOverride, readBuildSettings)

func resolveCommit(override string, settings func() map[string]string) string {
	if override != "" {
		return short(override)
	}

	s := settings()
	rev := s["vcs.revision"]
	if rev == "" {
		return "dev"
	}
	if s["vcs.modified"] == "true" {
		return short(rev) + "-dirty"
	}
	return short(rev)
}

func readBuildSettings() map[string]string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	return settings
}

// short truncates a commit hash to 8 characters.
func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "maskgate/<commit>" for user-agent strings and logging.
func Full() string {
	return AppName + "/" + GitCommit
}
