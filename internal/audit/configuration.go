package audit

import "strings"

const (
	defaultBaseCommandConstant = "vw -t -l 0.001"

	configurationBaseCommandKeyConstant = "base_command"
	configurationVerboseKeyConstant     = "verbose"
	configurationKeySeparatorConstant   = "."
)

// CommandConfiguration captures persistent settings for the audit command.
type CommandConfiguration struct {
	BaseCommand string `mapstructure:"base_command"`
	Verbose     bool   `mapstructure:"verbose"`
}

// DefaultCommandConfiguration returns baseline configuration values for the audit command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		BaseCommand: defaultBaseCommandConstant,
		Verbose:     false,
	}
}

// DefaultConfigurationValues exposes default settings keyed for configuration loading.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + configurationKeySeparatorConstant + configurationBaseCommandKeyConstant: defaults.BaseCommand,
		rootKey + configurationKeySeparatorConstant + configurationVerboseKeyConstant:     defaults.Verbose,
	}
}

// sanitize trims whitespace and applies defaults to unset configuration values.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.BaseCommand = strings.TrimSpace(configuration.BaseCommand)
	if len(sanitized.BaseCommand) == 0 {
		sanitized.BaseCommand = defaultBaseCommandConstant
	}

	return sanitized
}
