// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for ertkw.
//
// This package implements the Cobra command hierarchy for the ertkw CLI:
// browsing the ERT keyword catalog (list, show, doc, groups, complete),
// exporting it, and managing the ertkw configuration file.
package cmd
