// Command peopleq runs deferred queries against a small people record store.
//
// Records come from the people list in the config file, or from the built-in
// sample when none are configured.
//
//	peopleq get 1
//	peopleq list --first-name Fiona
//	peopleq single --id 8
//	peopleq names
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
