// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the device simulator runtime.
//
// A simulated device signs in to sensor-hub (registering its account on the
// first run), makes sure its sensor exists and then pushes synthetic
// readings at a fixed interval through the [adapter.ServerAdapter].
package client
