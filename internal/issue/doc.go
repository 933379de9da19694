// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved and
// suggestions for the user. The issue catalog adds Markdown pages, rendered
// with glamour, for failure classes that deserve a longer explanation.
package issue
