// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for sensor-hub.
//
// Configuration is assembled from multiple sources. Earlier sources take
// precedence over later ones for every non-zero field:
//  1. Environment variables (an optional .env file is loaded first)
//  2. Command-line flags
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the device simulator.
package config
