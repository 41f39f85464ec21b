// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields still unset afterwards receive the defaults from [Defaults].
// The main entry points are [GetStructuredConfig] for the API server and
// [GetAdminConfig] for the account administration tool.
package config
