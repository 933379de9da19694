// SPDX-License-Identifier: MPL-2.0

package ertkeywords

import kw "github.com/kgreg1/ert/pkg/keyword"

func enkfControlKeywords(w *groupWriter) {
	w.add(line("ENKF_ALPHA", kw.Float(kw.AtLeast(0))))
	w.add(line("ENKF_BOOTSTRAP", kw.Bool()))
	w.add(line("ENKF_CV_FOLDS", kw.Integer(kw.AtLeast(2))))
	w.add(line("ENKF_FORCE_NCOMP", kw.Bool()))
	w.add(line("ENKF_LOCAL_CV", kw.Bool()))
	w.add(line("ENKF_MERGE_OBSERVATIONS", kw.Bool()))
	w.add(line("ENKF_MODE", kw.ProperName()))
	w.add(line("ENKF_NCOMP", kw.Integer(kw.AtLeast(1))))
	w.add(line("ENKF_PEN_PRESS", kw.Bool()))
	// ENKF_RERUN <bool> [<report step>]
	w.add(line("ENKF_RERUN", kw.Bool(), kw.Integer(kw.AtLeast(0), kw.Optional())))
	w.add(line("ENKF_SCALING", kw.Bool()))
	w.add(line("ENKF_TRUNCATION", kw.Float(kw.Between(0, 1))))
	w.add(line("RERUN_START", kw.Integer(kw.AtLeast(0))))
	w.add(line("STD_CUTOFF", kw.Float(kw.AtLeast(0))))
	w.add(line("SINGLE_NODE_UPDATE", kw.Bool()))
	w.add(line("UPDATE_LOG_PATH", kw.Path()))
	w.add(line("UPDATE_RESULTS", kw.Bool()))
	w.add(line("LOCAL_CONFIG", kw.Path()))
}

func analysisModuleKeywords(w *groupWriter) {
	// ANALYSIS_LOAD <name> <shared library>
	w.add(line("ANALYSIS_LOAD", kw.ProperName(), kw.String()))
	w.add(line("ANALYSIS_COPY", kw.ProperName(), kw.ProperName()))
	w.add(line("ANALYSIS_SELECT", kw.ProperName()))
	w.add(line("ANALYSIS_SET_VAR", kw.ProperName(), kw.String(), text()))
	w.add(line("ITER_CASE", kw.ProperNameFormat()))
	w.add(line("ITER_COUNT", kw.Integer(kw.AtLeast(1))))
	w.add(line("ITER_RETRY_COUNT", kw.Integer(kw.AtLeast(0))))
}
