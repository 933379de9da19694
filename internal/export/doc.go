// SPDX-License-Identifier: MPL-2.0

// Package export converts the keyword registry into a serializable catalog
// and encodes it as JSON, YAML, TOML, CUE or Markdown.
//
// The Markdown writer also produces the single-keyword pages shown by
// "ertkw doc".
package export
