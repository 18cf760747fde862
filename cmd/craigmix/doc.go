// Package main hosts the craigmix CLI entrypoint and command graph.
//
// The Cobra-based command tree resolves configuration (file plus flag
// overrides), builds the structured logger, and hands a fully wired merge
// processor the run. Subcommands cover dependency checks and configuration
// scaffolding; everything with real behavior lives in the internal packages
// and is only surfaced here.
package main
