// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/ast"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/format"
)

// Encode renders v as formatted CUE source. Field names follow the json
// struct tags of v. When v encodes to a struct, its fields are emitted at
// file level without the enclosing braces.
func Encode(v any) ([]byte, error) {
	value := cuecontext.New().Encode(v)
	if value.Err() != nil {
		return nil, fmt.Errorf("encode CUE value: %w", value.Err())
	}

	node := value.Syntax(cue.Final(), cue.Concrete(true))
	if st, ok := node.(*ast.StructLit); ok {
		node = &ast.File{Decls: st.Elts}
	}

	out, err := format.Node(node)
	if err != nil {
		return nil, fmt.Errorf("format CUE source: %w", err)
	}
	return out, nil
}
