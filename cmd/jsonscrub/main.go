// Command jsonscrub batch-cleans JSON record files and serves user lookups
// from an in-memory roster.
package main

import (
	"github.com/rshade/jsonscrub/internal/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.Execute(version)
}
