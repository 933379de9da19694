// SPDX-License-Identifier: MPL-2.0

// Package ertkeywords holds the built-in catalog of ERT configuration keywords.
//
// New builds a keyword.Registry by running one registrar per keyword group
// in a fixed order. The catalog is static: any failure means two groups
// declare the same keyword or a definition is malformed, and New reports it
// instead of returning a partial registry.
package ertkeywords

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kgreg1/ert/pkg/keyword"
)

type (
	// groupRegistrar adds every keyword of one group to the registry.
	groupRegistrar struct {
		group keyword.Group
		// docSection is the documentation folder of the group.
		docSection string
		register   func(*groupWriter)
	}

	// groupWriter stamps group and documentation link on each definition
	// and keeps the first failure, so registrars can stay declarative.
	groupWriter struct {
		registry   *keyword.Registry
		group      keyword.Group
		docSection string
		err        error
	}
)

// registrars lists the groups in registration order.
var registrars = []groupRegistrar{
	{keyword.GroupEnsemble, "ensemble", ensembleKeywords},
	{keyword.GroupRun, "run", runKeywords},
	{keyword.GroupEclipse, "eclipse", eclipseKeywords},
	{keyword.GroupQueueSystem, "queue_system", queueSystemKeywords},
	{keyword.GroupSimulationControl, "simulation_control", simulationControlKeywords},
	{keyword.GroupParametrization, "parametrization", parametrizationKeywords},
	{keyword.GroupEnkfControl, "enkf_control", enkfControlKeywords},
	{keyword.GroupAnalysisModule, "analysis_module", analysisModuleKeywords},
	{keyword.GroupPlot, "plot", plotKeywords},
	{keyword.GroupWorkflow, "workflow", workflowKeywords},
	{keyword.GroupReport, "report", reportKeywords},
	{keyword.GroupAdvanced, "advanced", advancedKeywords},
	{keyword.GroupQC, "qc", qcKeywords},
	{keyword.GroupUnixEnvironment, "unix_environment", unixEnvironmentKeywords},
}

// New returns a registry holding the full ERT keyword catalog.
func New() (*keyword.Registry, error) {
	return build(registrars)
}

// MustNew is like New but panics if the catalog is inconsistent.
func MustNew() *keyword.Registry {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Groups returns the catalog groups in registration order.
func Groups() []keyword.Group {
	out := make([]keyword.Group, len(registrars))
	for i, reg := range registrars {
		out[i] = reg.group
	}
	return out
}

func build(regs []groupRegistrar) (*keyword.Registry, error) {
	r := keyword.NewRegistry()
	for _, reg := range regs {
		if err := reg.populate(r); err != nil {
			return nil, fmt.Errorf("register %s keywords: %w", reg.group, err)
		}
	}
	slog.Debug("Keyword catalog ready.", "keywords", r.Len(), "groups", len(regs))
	return r, nil
}

func (g groupRegistrar) populate(r *keyword.Registry) error {
	w := &groupWriter{registry: r, group: g.group, docSection: g.docSection}
	g.register(w)
	return w.err
}

// add registers one keyword. The documentation link defaults to
// "<section>/<lower-case name>".
func (w *groupWriter) add(spec keyword.LineSpec) {
	if w.err != nil {
		return
	}
	spec.Group = w.group
	if spec.DocumentationLink == "" {
		spec.DocumentationLink = keyword.DocumentationLink(w.docSection + "/" + strings.ToLower(string(spec.Name)))
	}
	def, err := keyword.NewConfigurationLine(spec)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.registry.Add(def)
}

// line is shorthand for an optional keyword with the given arguments.
func line(name keyword.KeywordName, args ...keyword.Argument) keyword.LineSpec {
	return keyword.LineSpec{Name: name, Arguments: args}
}

// text is the trailing free-text argument shared by many keywords.
func text() keyword.Argument {
	return keyword.String(keyword.RestOfLine(), keyword.AllowSpace())
}
