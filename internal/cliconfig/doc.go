// Package cliconfig provides configuration types and loading for the
// sherlock CLI.
//
// It implements a layered configuration system with the following
// precedence (highest to lowest):
//
//  1. Command-line flags
//  2. Environment variables (SHERLOCK_* prefix)
//  3. Local config file (.sherlockrc.yaml in current directory)
//  4. Global config file (~/.config/sherlock/config.yaml)
//  5. Default values
//
// A .env file in the current directory is loaded into the environment
// before the environment layer applies, so AWP_ROOT* and SHERLOCK_*
// variables can be supplied per project.
//
// Each configuration value's origin is tracked in Sources for
// debugging.
package cliconfig
