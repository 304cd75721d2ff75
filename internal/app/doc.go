// Package app holds the configuration, logger and output printer shared by
// the cryptouri commands.
//
// Configuration is read through viper from flags, CRYPTOURI_* environment
// variables and an optional config file, in that order of precedence.
package app
