// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE utilities.
//
// Decoding follows a 3-step flow used by the config package:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify with schema
//  3. Validate and decode to Go value
//
// Encoding renders Go values as formatted CUE source, which backs the CUE
// export of the keyword catalog.
//
// # Usage
//
//	//go:embed config_schema.cue
//	var schemaBytes []byte
//
//	result, err := cueutil.ParseAndDecode[map[string]any](
//	    schemaBytes,
//	    userFileBytes,
//	    "#Config",
//	    cueutil.WithFilename("config.cue"),
//	    cueutil.WithConcrete(false),
//	)
//	if err != nil {
//	    return nil, err  // Error includes CUE path for debugging
//	}
package cueutil
