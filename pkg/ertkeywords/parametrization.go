// SPDX-License-Identifier: MPL-2.0

package ertkeywords

import kw "github.com/kgreg1/ert/pkg/keyword"

// parametrizationKeywords declares the uncertain parameters and responses of the model.
func parametrizationKeywords(w *groupWriter) {
	// FIELD <id> <type> <options...>
	w.add(kw.LineSpec{
		Name:              "FIELD",
		Arguments:         []kw.Argument{kw.String(), kw.String(), text()},
		DocumentationLink: "parametrization/field",
	})
	// GEN_DATA <id> <options...>
	w.add(kw.LineSpec{
		Name:              "GEN_DATA",
		Arguments:         []kw.Argument{kw.String(), kw.String(), text()},
		DocumentationLink: "parametrization/gen_data",
	})
	// The third argument of GEN_KW and GEN_PARAM may reference a built-in file.
	w.add(kw.LineSpec{
		Name: "GEN_KW",
		Arguments: []kw.Argument{
			kw.String(),
			kw.String(),
			kw.String(kw.BuiltIn(), kw.AllowSpace()),
		},
		DocumentationLink: "parametrization/gen_kw",
	})
	w.add(kw.LineSpec{
		Name:              "SUMMARY",
		Arguments:         []kw.Argument{kw.String()},
		DocumentationLink: "parametrization/summary",
	})
	w.add(kw.LineSpec{
		Name: "GEN_PARAM",
		Arguments: []kw.Argument{
			kw.String(),
			kw.String(),
			kw.String(kw.BuiltIn(), kw.AllowSpace()),
		},
		DocumentationLink: "parametrization/gen_param",
	})
}
