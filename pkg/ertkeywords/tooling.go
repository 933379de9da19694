// SPDX-License-Identifier: MPL-2.0

package ertkeywords

import kw "github.com/kgreg1/ert/pkg/keyword"

func plotKeywords(w *groupWriter) {
	w.add(line("PLOT_DRIVER", kw.ProperName()))
	w.add(line("PLOT_ERRORBAR", kw.Bool()))
	w.add(line("PLOT_ERRORBAR_MAX", kw.Integer(kw.AtLeast(0))))
	w.add(line("PLOT_HEIGHT", kw.Integer(kw.AtLeast(1))))
	w.add(line("PLOT_WIDTH", kw.Integer(kw.AtLeast(1))))
	w.add(line("PLOT_PATH", kw.Path()))
	w.add(line("PLOT_REFCASE", kw.Bool()))
	w.add(line("IMAGE_TYPE", kw.ProperName()))
	w.add(line("IMAGE_VIEWER", kw.Path()))
	w.add(line("RFT_CONFIG", kw.Path()))
	w.add(line("RFTPATH", kw.Path()))
}

func workflowKeywords(w *groupWriter) {
	// LOAD_WORKFLOW <file> [<name>]
	w.add(line("LOAD_WORKFLOW", kw.Path(), kw.ProperName(kw.Optional())))
	w.add(line("LOAD_WORKFLOW_JOB", kw.Path(), kw.ProperName(kw.Optional())))
	w.add(line("WORKFLOW_JOB_DIRECTORY", kw.Path()))
	// HOOK_WORKFLOW <name> PRE_SIMULATION|POST_SIMULATION
	w.add(line("HOOK_WORKFLOW", kw.ProperName(), kw.ProperName()))
}

func reportKeywords(w *groupWriter) {
	w.add(line("REPORT_CONTEXT", kw.String(), text()))
	w.add(line("REPORT_SEARCH_PATH", kw.Path()))
	w.add(line("REPORT_LIST", text()))
	w.add(line("REPORT_GROUP_LIST", kw.String(), text()))
	w.add(line("REPORT_WELL_LIST", kw.String(), text()))
	w.add(line("REPORT_LARGE", kw.Bool()))
	w.add(line("REPORT_PATH", kw.Path()))
	w.add(line("REPORT_TIMEOUT", kw.Integer(kw.AtLeast(0))))
}

func advancedKeywords(w *groupWriter) {
	w.add(line("ADD_FIXED_LENGTH_SCHEDULE_KW", kw.String(), kw.Integer(kw.AtLeast(0))))
	w.add(line("ADD_STATIC_KW", text()))
	w.add(line("DEFINE", kw.String(), text()))
	w.add(line("DATA_KW", kw.String(), text()))
	w.add(line("CASE_TABLE", kw.Path()))
	w.add(line("LOG_FILE", kw.Path()))
	w.add(line("LOG_LEVEL", kw.Integer(kw.Between(0, 4))))
	w.add(line("STORE_SEED", kw.Path()))
	w.add(line("LOAD_SEED", kw.Path()))
	w.add(line("GEN_KW_TAG_FORMAT", kw.String()))
	w.add(line("GEN_KW_EXPORT_FILE", kw.Path()))
}

func qcKeywords(w *groupWriter) {
	w.add(line("QC_PATH", kw.Path()))
	w.add(line("QC_WORKFLOW", kw.Path()))
}

func unixEnvironmentKeywords(w *groupWriter) {
	w.add(line("SETENV", kw.String(), text()))
	w.add(line("UPDATE_PATH", kw.String(), kw.Path()))
	w.add(line("LICENSE_PATH", kw.Path()))
	w.add(line("UMASK", kw.String()))
}
