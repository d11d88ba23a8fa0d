package main

import (
	"github.com/veldt-labs/workspacehub/internal/adapters/driving/cli"
)

// version is injected at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
