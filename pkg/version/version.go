// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

//nolint:revive // var-naming: avoid package names that conflict with Go standard library package names
package version

// Version is filled on compilation time.
var Version = "<unknown>"
