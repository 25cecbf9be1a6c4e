package cli

import (
	"fmt"
	"maps"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/loopybayes/bayesnet"
	"github.com/katalvlaran/loopybayes/internal/models"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Config   string
	Steps    int
	Workers  int
	Evidence map[string]string
	Prior    bool
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run [model]",
		Short: "Run belief propagation on a bundled network",
		Long: `Run Loopy Belief Propagation on one of the bundled networks and print
the belief of every variable.

Without --steps the model's default sweep count is used; --steps 0 reports
the beliefs before any sweep. Without --evidence the model's default
observations are used; --prior runs without any evidence. Evidence values are value names or indices; an index
outside a variable's range makes the network impossible and every affected
belief prints as zero.

Example:
  lbp run sprinkler
  lbp run sprinkler --evidence sprinkler=yes --steps 10
  lbp run flatearth --format json
  lbp run --config run.yaml`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModel(opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "YAML run file")
	cmd.Flags().IntVarP(&opts.Steps, "steps", "n", 0, "number of sweeps (default: model specific)")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", bayesnet.DefaultWorkers, "goroutines computing messages per sweep")
	cmd.Flags().StringToStringVarP(&opts.Evidence, "evidence", "e", nil, "observations as variable=value")
	cmd.Flags().BoolVar(&opts.Prior, "prior", false, "ignore default evidence")

	return cmd
}

// runSettings is the merged result of run file, flags and model defaults.
type runSettings struct {
	model    string
	steps    int
	stepsSet bool // false ⇒ model default
	workers  int
	evidence map[string]string // nil ⇒ model default
}

func resolveSettings(opts *RunOptions, args []string, cmd *cobra.Command) (*runSettings, error) {
	s := &runSettings{workers: bayesnet.DefaultWorkers}

	if opts.Config != "" {
		rf, err := LoadRunFile(opts.Config)
		if err != nil {
			return nil, err
		}
		s.model, s.evidence = rf.Model, rf.Evidence
		if rf.Steps != nil {
			s.steps, s.stepsSet = *rf.Steps, true
		}
		if rf.Workers > 0 {
			s.workers = rf.Workers
		}
	}

	flags := cmd.Flags()
	if len(args) == 1 {
		s.model = args[0]
	}
	if flags.Changed("steps") {
		s.steps, s.stepsSet = opts.Steps, true
	}
	if flags.Changed("workers") {
		s.workers = opts.Workers
	}
	if flags.Changed("evidence") {
		s.evidence = maps.Clone(opts.Evidence)
	}
	if opts.Prior {
		s.evidence = map[string]string{}
	}

	if s.model == "" {
		return nil, fmt.Errorf("no model given: pass one of %v or set model in the run file", models.Names())
	}
	if s.steps < 0 {
		return nil, fmt.Errorf("steps must be >= 0, got %d", s.steps)
	}
	if s.workers < 1 {
		return nil, fmt.Errorf("workers must be >= 1, got %d", s.workers)
	}

	return s, nil
}

func runModel(opts *RunOptions, args []string, cmd *cobra.Command) error {
	logger := newLogger(opts.RootOptions, cmd)

	s, err := resolveSettings(opts, args, cmd)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid run settings", err)
	}

	m, err := models.Build(s.model, bayesnet.WithWorkers(s.workers), bayesnet.WithLogger(logger))
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build model", err)
	}
	if !s.stepsSet {
		s.steps = m.DefaultSteps
	}
	if s.evidence == nil {
		s.evidence = m.DefaultEvidence
	}

	logger.Info("running", "model", m.Name, "steps", s.steps, "workers", s.workers, "observations", len(s.evidence))
	if err = m.Infer(s.evidence, s.steps); err != nil {
		return WrapExitError(ExitCommandError, "failed to apply evidence", err)
	}

	return writeReport(cmd.OutOrStdout(), opts.Format, buildReport(m, s))
}

func buildReport(m *models.Model, s *runSettings) *RunReport {
	beliefs := m.Net.Beliefs()
	r := &RunReport{
		Model:    m.Name,
		Steps:    s.steps,
		Evidence: s.evidence,
		Beliefs:  make([]BeliefReport, 0, len(m.Variables)),
	}
	for _, v := range m.Variables {
		b := beliefs[v.ID]
		p := b.Probabilities()
		br := BeliefReport{
			Name:          v.Name,
			Probabilities: make(map[string]float64, len(v.Values)),
			values:        v.Values,
		}
		for i, name := range v.Values {
			br.Probabilities[name] = p[i]
		}
		if len(v.Values) == 2 {
			br.Log10Odds = finiteOrNil(b.LogOdds(1, 0, 10))
		}
		r.Beliefs = append(r.Beliefs, br)
	}

	return r
}
