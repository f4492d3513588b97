// nuxt-prisma CLI
//
// A terminal user interface for setting up Prisma ORM inside a Nuxt
// project: CLI installation, schema scaffolding, migrations, client
// generation, and Prisma Studio.
//
// Usage:
//
//	nuxt-prisma setup             # Interactive setup pipeline
//	nuxt-prisma setup --yes       # Non-interactive, run every enabled step
//	nuxt-prisma setup --skip-all  # Do nothing (CI guard)
//	nuxt-prisma studio            # Launch Prisma Studio
//	nuxt-prisma doctor            # Diagnose the environment
//	nuxt-prisma version           # Show version
//
// Build:
//
//	make build                    # Build for current platform
//	make release                  # Cross-compile all platforms
package main

import "github.com/rileychh/nuxt-prisma/cmd"

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	// Set version from build-time variable
	cmd.Version = Version
	cmd.Execute()
}
