// Package constants holds process-wide constant values shared across commands.
package constants

const (
	ConfigName   = "config"
	ConfigFormat = "yaml"

	ServiceName = "shifaalhind_backend"
)
