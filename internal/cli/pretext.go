package cli

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goldpath/goldpath/pkg/assembly"
	"github.com/goldpath/goldpath/pkg/format"
	"github.com/goldpath/goldpath/pkg/remap"
	"github.com/goldpath/goldpath/pkg/stats"
)

// pretextOpts holds the command-line flags for pretext-to-tpf.
type pretextOpts struct {
	assembly string // original assembly file
	pretext  string // curated AGP exported from PretextView
	output   string // output file path (stdout if empty)
	config   string // config file path
	clobber  bool   // overwrite existing output
	stats    bool   // report break and join counts
}

// NewPretextToTPFCommand creates the pretext-to-tpf root command.
//
// PretextView works on a map binned to roughly 32k texels, so the AGP
// it saves carries rounded coordinates. This command re-projects that
// curated AGP onto the coordinate-accurate assembly the map was built
// from, producing output that names the original components at their
// exact positions.
func NewPretextToTPFCommand() *cobra.Command {
	var opts pretextOpts

	root := newRootCommand("pretext-to-tpf",
		"pretext-to-tpf rebuilds accurate assemblies from PretextView curation",
		`pretext-to-tpf applies the scaffold arrangement of a curated PretextView
AGP to the coordinate-accurate assembly the Hi-C map was built from.

Every sequence row of the curated AGP names a scaffold of the original
assembly plus the region and strand the curator chose. The command looks
those regions up, clips partially covered components and gaps, reverses
regions placed on the minus strand, and emits the result with fresh
coordinates.

Examples:
  pretext-to-tpf -a scaffolds.tpf -p curated.agp -o curated.tpf
  pretext-to-tpf -a scaffolds.agp -p curated.agp --stats`)

	root.RunE = func(cmd *cobra.Command, args []string) error {
		return runPretextToTPF(cmd.Context(), &opts)
	}

	flags := root.Flags()
	flags.StringVarP(&opts.assembly, "assembly", "a", "", "original assembly file, AGP or TPF (required)")
	flags.StringVarP(&opts.pretext, "pretext", "p", "", "curated AGP saved by PretextView (required)")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	flags.StringVar(&opts.config, "config", "", "config file (default: .goldpath.toml if present)")
	flags.BoolVar(&opts.clobber, "clobber", false, "overwrite the output file if it exists")
	flags.BoolVar(&opts.stats, "stats", false, "report break and join counts")
	cobra.CheckErr(root.MarkFlagRequired("assembly"))
	cobra.CheckErr(root.MarkFlagRequired("pretext"))

	return root
}

func runPretextToTPF(ctx context.Context, opts *pretextOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	fmtOpts := cfg.formatOptions(false)

	original, err := parseFile(ctx, opts.assembly, format.TPF, fmtOpts)
	if err != nil {
		return err
	}
	curated, err := parseFile(ctx, opts.pretext, format.AGP, fmtOpts)
	if err != nil {
		return err
	}

	p := newProgress(logger)
	out, err := remap.Remap(curated, original)
	if err != nil {
		return err
	}

	outFormat, err := format.Detect(opts.output, format.TPF)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := format.Write(&buf, outFormat, out); err != nil {
		return err
	}
	if err := writeOutput(opts.output, opts.clobber, buf.Bytes()); err != nil {
		return err
	}

	p.done(fmt.Sprintf("Remapped %d scaffolds", out.NumScaffolds()))
	if opts.output != "" && opts.output != "-" {
		printSuccess("Wrote remapped assembly")
		printFile(opts.output)
	}
	if opts.stats {
		st := stats.Diff(curated, original)
		printSuccess("Curation changes")
		printStats(st.Breaks, st.Joins)
	}
	return nil
}

// parseFile parses one assembly file, detecting its format from the
// extension with the given fallback, and logs any parse warnings.
func parseFile(ctx context.Context, path string, fallback format.Format, opts format.Options) (*assembly.Assembly, error) {
	logger := loggerFromContext(ctx)

	f, err := format.Detect(path, fallback)
	if err != nil {
		return nil, err
	}
	in, name, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	asm, warnings, err := format.Parse(in, f, name, opts)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		logger.Warnf("%s: %s", path, w)
	}
	logger.Debugf("parsed %s: %d scaffolds", path, asm.NumScaffolds())
	return asm, nil
}
