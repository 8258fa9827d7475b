// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the splasp client.
//
// This package contains common helper functions used throughout the
// application for string truncation and file operations.
//
// # Key Functions
//
//   - TruncateRunes: UTF-8 safe string truncation with ellipsis
//   - TruncateWidth: display-width truncation for table cells
//   - AtomicWriteFile: crash-safe file writing with fsync
package util
