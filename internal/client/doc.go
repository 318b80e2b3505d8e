// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the relay client runtime.
//
// It prepares local data on first start, runs the background workers and
// hands control to the terminal UI for the lifetime of the process.
package client
