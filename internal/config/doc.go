// Package config loads application configuration from environment
// variables (SALESPULSE_ prefix) layered over an optional YAML file.
// Environment values take precedence; defaults apply where neither
// source sets a value.
package config
