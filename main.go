// Package main is the entry point for the pkgwrap CLI.
package main

import "pkgwrap.dev/pkg/pkgwrap/cmd"

func main() {
	cmd.Execute()
}
