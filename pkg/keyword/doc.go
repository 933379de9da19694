// SPDX-License-Identifier: MPL-2.0

// Package keyword defines the value types of the ERT configuration keyword
// catalog and the Registry that indexes them.
//
// A ConfigurationLineDefinition describes one keyword line: its name, the
// ordered list of typed positional arguments, a documentation link, whether
// the keyword is required, and the group it is listed under. Arguments are
// tagged by a closed ArgumentKind and carry their parsing modifiers
// (rest-of-line, allow-space, built-in, optional) as explicit fields.
//
//	def, err := keyword.NewConfigurationLine(keyword.LineSpec{
//		Name: "FIELD",
//		Arguments: []keyword.Argument{
//			keyword.String(),
//			keyword.String(),
//			keyword.String(keyword.RestOfLine(), keyword.AllowSpace()),
//		},
//		DocumentationLink: "parametrization/field",
//		Group:             keyword.GroupParametrization,
//	})
//
// The Registry rejects duplicate names and preserves declaration order for
// listings. It does not parse or validate configuration text.
package keyword
