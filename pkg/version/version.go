// Package version derives the build identity reported in logs and the health
// endpoint. The commit hash comes from -ldflags when set, otherwise from the
// VCS metadata Go embeds in the binary; plain `go test` builds report "dev".
package version

import "runtime/debug"

// AppName prefixes version strings in logs and user agent headers.
const AppName = "proctor"

// gitCommitOverride is set via -ldflags for container builds without .git.
var gitCommitOverride string

// GitCommit is the short commit hash of the build, with a -dirty suffix when
// the worktree had local modifications.
var GitCommit = resolveCommit()

// Full returns "proctor/<commit>" for logs and user agent strings.
func Full() string {
	return AppName + "/" + GitCommit
}

func resolveCommit() string {
	if gitCommitOverride != "" {
		return shorten(gitCommitOverride)
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	revision := ""
	dirty := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" {
		return "dev"
	}
	if dirty {
		return shorten(revision) + "-dirty"
	}
	return shorten(revision)
}

// shorten trims a full hash to the 8 chars used everywhere else.
func shorten(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}
