// Package commands implements the credstore CLI: inspecting and editing the
// on-disk credential and key-record store.
package commands
