// Package app wires application dependencies for the CLI.
//
// It loads Config (flags plus an optional YAML file), builds the store and
// its logger, and exposes them via the Wire struct for commands to use.
package app
