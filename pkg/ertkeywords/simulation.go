// SPDX-License-Identifier: MPL-2.0

package ertkeywords

import kw "github.com/kgreg1/ert/pkg/keyword"

func ensembleKeywords(w *groupWriter) {
	w.add(kw.LineSpec{
		Name:      "NUM_REALIZATIONS",
		Arguments: []kw.Argument{kw.Integer(kw.AtLeast(1))},
		Required:  true,
	})
	w.add(line("END_DATE", kw.String()))
	w.add(line("ENSPATH", kw.Path()))
	w.add(line("SELECT_CASE", kw.String()))
	w.add(line("HISTORY_SOURCE", kw.ProperName()))
	w.add(line("OBS_CONFIG", kw.Path()))
	w.add(line("TIME_MAP", kw.Path()))
}

func runKeywords(w *groupWriter) {
	w.add(line("INSTALL_JOB", kw.ProperName(), kw.Path()))
	w.add(line("FORWARD_MODEL", text()))
	w.add(line("SIMULATION_JOB", text()))
	w.add(line("RUNPATH", kw.Path()))
	w.add(line("RUNPATH_FILE", kw.Path()))
	w.add(line("RUN_TEMPLATE", kw.Path(), text()))
	w.add(line("JOB_SCRIPT", kw.Path()))
	w.add(line("KEEP_RUNPATH", kw.RangeString()))
	w.add(line("DELETE_RUNPATH", kw.RangeString()))
	w.add(line("PRE_CLEAR_RUNPATH", kw.Bool()))
}

func eclipseKeywords(w *groupWriter) {
	w.add(line("DATA_FILE", kw.Path()))
	w.add(line("ECLBASE", kw.ProperNameFormat()))
	w.add(line("GRID", kw.Path()))
	w.add(line("INIT_SECTION", kw.Path()))
	w.add(line("REFCASE", kw.Path()))
	w.add(line("SCHEDULE_FILE", kw.Path()))
	w.add(line("SCHEDULE_PREDICTION_FILE", kw.Path()))
	w.add(line("IGNORE_SCHEDULE", kw.Bool()))
	w.add(line("EQUIL_INIT_FILE", kw.Path()))
}

func queueSystemKeywords(w *groupWriter) {
	w.add(line("QUEUE_SYSTEM", kw.ProperName()))
	// QUEUE_OPTION <queue> <option> <value...>
	w.add(line("QUEUE_OPTION", kw.ProperName(), kw.ProperName(), text()))
	w.add(line("LSF_QUEUE", kw.String()))
	w.add(line("LSF_SERVER", kw.String()))
	w.add(line("LSF_RESOURCES", text()))
	w.add(line("MAX_RUNNING_LSF", kw.Integer(kw.AtLeast(1))))
	w.add(line("MAX_RUNNING_LOCAL", kw.Integer(kw.AtLeast(1))))
	w.add(line("MAX_RUNNING_RSH", kw.Integer(kw.AtLeast(1))))
	w.add(line("RSH_HOST", kw.String(), kw.Integer(kw.AtLeast(1))))
	w.add(line("RSH_COMMAND", kw.Path()))
	w.add(line("HOST_TYPE", kw.String()))
}

func simulationControlKeywords(w *groupWriter) {
	w.add(line("MAX_RUNTIME", kw.Integer(kw.AtLeast(0))))
	// Either an absolute count or a percentage such as "80%".
	w.add(line("MIN_REALIZATIONS", kw.String()))
	w.add(line("MAX_SUBMIT", kw.Integer(kw.AtLeast(1))))
	w.add(line("MAX_RESAMPLE", kw.Integer(kw.AtLeast(0))))
	w.add(line("STOP_LONG_RUNNING", kw.Bool()))
}
