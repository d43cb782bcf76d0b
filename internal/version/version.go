// Package version holds build information, overridden with -ldflags at build time:
//
//	go build -ldflags "-X github.com/keshon/server-buddy/internal/version.Version=1.2.0"
package version

var (
	AppName        = "Server Buddy"
	AppDescription = "Quotes, dogs, cats and a few moderation helpers for your server."
	Version        = "dev"
	BuildDate      = ""
	GoVersion      = ""
)
