package cmd

import "runtime/debug"

// buildVersion reports the module version baked in at build time. A
// `version` subcommand would shadow the positional argument, so the version
// is exposed through cobra's --version flag instead.
func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return "unknown"
	}

	return info.Main.Version
}
