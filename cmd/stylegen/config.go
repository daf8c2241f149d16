package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yacobolo/stylegen"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".stylegen.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	// Merge flags from the specific command and its parent (root) flags
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (STYLEGEN_* prefix)
	if err := k.Load(env.Provider("STYLEGEN_", ".", func(s string) string {
		// STYLEGEN_CONVERT_SPLIT -> convert.split
		// STYLEGEN_VALIDATE_STRICT -> validate.strict
		// STYLEGEN_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "STYLEGEN_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildConvertOptions constructs the library's Options struct from koanf state.
func buildConvertOptions() (stylegen.Options, error) {
	opts := stylegen.DefaultOptions()
	opts.GroupComponents = getBoolWithFallback("components", "convert.components", false)
	opts.ExtractVariants = !getBoolWithFallback("no-variants", "convert.no-variants", false)
	opts.IncludeUtilities = getBoolWithFallback("utilities", "convert.utilities", false)
	opts.SplitModules = getBoolWithFallback("split", "convert.split", false)
	opts.UnitName = getStringWithFallback("unit", "convert.unit", "")
	opts.Framework = getStringWithFallback("framework", "convert.framework", "")
	opts.Logger = buildLogger()

	// Handle extra variants: check flag key first, then config key
	if extras := k.Strings("variants"); len(extras) > 0 {
		opts.ExtraVariants = extras
	} else if extras := k.Strings("convert.variants"); len(extras) > 0 {
		opts.ExtraVariants = extras
	}

	if path := getStringWithFallback("mappings", "convert.mappings", ""); path != "" {
		overlay, err := stylegen.LoadOverlayFile(path)
		if err != nil {
			return opts, err
		}
		opts.Overlay = overlay
	}

	return opts, nil
}

// buildLogger returns a development logger in verbose mode and nil otherwise.
// The library treats a nil logger as "stay silent".
func buildLogger() *zap.Logger {
	if !getBoolWithFallback("verbose", "verbose", false) {
		return nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil
	}
	return logger
}

// reportConfig constructs the reporter settings shared by convert, analyze
// and validate output.
func reportConfig() stylegen.ReportConfig {
	return stylegen.ReportConfig{
		PrintSourceLines: getBoolWithFallback("print-lines", "validate.print-lines", true),
		PrintCheckName:   getBoolWithFallback("print-check-name", "validate.print-check-name", true),
		UseColors:        getBoolWithFallback("color", "color", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

// getFloat64WithFallback checks the flag key first, then the config file key, then returns the default.
func getFloat64WithFallback(flagKey, configKey string, defaultVal float64) float64 {
	if k.Exists(flagKey) {
		return k.Float64(flagKey)
	}
	if k.Exists(configKey) {
		return k.Float64(configKey)
	}
	return defaultVal
}
