// Package cli implements ipsim's command-line surface: a sequence of
// family subcommands (graph, rule, initial, halt, record, output) each
// parsed by its own flag.FlagSet, assembled into a solver.Config, run
// once synchronously, and rendered to the requested output file.
//
// No dependency here pulls in a CLI framework (cobra, kingpin,
// urfave/cli) for a surface this small, and spf13/viper is built for
// long-lived server configuration, not one-shot argument parsing.
// flag.FlagSet per subcommand is the idiomatic stdlib answer, matching
// this codebase's preference for small hand-rolled utilities
// (utils/intutils) over frameworks.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/ips/graph"
	"github.com/samuelfneumann/ips/initial"
	"github.com/samuelfneumann/ips/policy"
	"github.com/samuelfneumann/ips/render"
	"github.com/samuelfneumann/ips/rules"
	"github.com/samuelfneumann/ips/solver"
)

// ErrInvalidConfig is returned for any malformed or unrecognized
// command-line input.
var ErrInvalidConfig = errors.New("cli: invalid configuration")

// cursor walks a sequence of family subcommands, each consisting of a
// name token followed by flags belonging to that family.
type cursor struct {
	rest []string
}

// take pops the family keyword (which must equal fs.Name()) and the
// subcommand name after it, then parses fs against the flags that
// immediately follow, stopping at the next family keyword (the first
// token flag.Parse does not recognize as a flag).
func (c *cursor) take(fs *flag.FlagSet) (string, error) {
	if len(c.rest) < 2 || c.rest[0] != fs.Name() {
		return "", fmt.Errorf("%w: expected %q followed by a subcommand, got %v", ErrInvalidConfig, fs.Name(), c.rest)
	}
	name := c.rest[1]
	if err := fs.Parse(c.rest[2:]); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	c.rest = fs.Args()
	return name, nil
}

// Run parses args (as from os.Args[1:]), runs one simulation, and writes
// the requested output file. A non-nil error corresponds to an
// InvalidConfig or IOFailure condition; AllRatesZero is not an error.
func Run(args []string) error {
	c := &cursor{rest: args}

	g, err := parseGraph(c)
	if err != nil {
		return err
	}
	ruleSet, err := parseRule(c)
	if err != nil {
		return err
	}
	init, err := parseInitial(c, g, ruleSet)
	if err != nil {
		return err
	}
	halt, err := parseHalt(c)
	if err != nil {
		return err
	}
	record, err := parseRecord(c)
	if err != nil {
		return err
	}
	outputKind, outputArgs, err := parseOutput(c)
	if err != nil {
		return err
	}
	if len(c.rest) != 0 {
		return fmt.Errorf("%w: unrecognized trailing arguments: %v", ErrInvalidConfig, c.rest)
	}

	result, err := solver.Run(solver.Config{
		Graph:   g,
		Rules:   ruleSet,
		Initial: init,
		Halt:    halt,
		Record:  record,
		Rand:    rand.NewSource(uint64(time.Now().UnixNano())),
	})
	if err != nil {
		return err
	}

	switch outputKind {
	case "image-growth":
		if err := render.GrowthImage(result.Record, g.VertexCount(), ruleSet, outputArgs.path); err != nil {
			return fmt.Errorf("cli: %w", err)
		}
	case "image-gif":
		if g.VertexCount()%outputArgs.height != 0 {
			return fmt.Errorf("%w: image-gif: vertex count %d not divisible by -height %d", ErrInvalidConfig, g.VertexCount(), outputArgs.height)
		}
		width := g.VertexCount() / outputArgs.height
		if err := render.GIF(result.Record, width, outputArgs.height, ruleSet, outputArgs.msPerFrame, outputArgs.path); err != nil {
			return fmt.Errorf("cli: %w", err)
		}
	}
	return nil
}

func parseGraph(c *cursor) (graph.Graph, error) {
	fs := flag.NewFlagSet("graph", flag.ContinueOnError)
	dims := fs.String("dims", "", "comma-separated per-axis sizes (grid-nd)")
	cyclicFlag := fs.String("cyclic", "", "comma-separated true/false per axis (grid-nd)")
	n := fs.Int("n", 0, "vertex count (erdos-renyi)")
	avgDegree := fs.Float64("avg-degree", 0, "average degree (erdos-renyi)")
	width := fs.Int("width", 0, "lattice width (diluted-lattice)")
	height := fs.Int("height", 0, "lattice height (diluted-lattice)")
	percent := fs.Float64("percent", 0, "per-edge inclusion probability (diluted-lattice)")
	seed := fs.Uint64("seed", 1, "random seed for randomized constructors")

	name, err := c.take(fs)
	if err != nil {
		return nil, err
	}

	switch name {
	case "grid-nd":
		dimInts, err := parseIntList(*dims)
		if err != nil {
			return nil, fmt.Errorf("%w: -dims: %v", ErrInvalidConfig, err)
		}
		cyclicBools, err := parseBoolList(*cyclicFlag)
		if err != nil {
			return nil, fmt.Errorf("%w: -cyclic: %v", ErrInvalidConfig, err)
		}
		g, err := graph.NewGridND(dimInts, cyclicBools)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		return g, nil
	case "erdos-renyi":
		g, err := graph.NewErdosRenyi(*n, *avgDegree, rand.NewSource(*seed))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		return g, nil
	case "diluted-lattice":
		g, err := graph.NewDilutedLattice(*width, *height, *percent, rand.NewSource(*seed))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		return g, nil
	default:
		return nil, fmt.Errorf("%w: unrecognized graph subcommand %q", ErrInvalidConfig, name)
	}
}

func parseRule(c *cursor) (rules.RuleSet, error) {
	fs := flag.NewFlagSet("rule", flag.ContinueOnError)
	birth := fs.Float64("birth", 0, "birth rate")
	death := fs.Float64("death", 0, "death rate")
	compete := fs.Float64("compete", 0, "compete rate (two-si)")
	parties := fs.Int("parties", 0, "party count (voter)")
	changeRate := fs.Float64("change-rate", 0, "per-neighbor adoption rate (voter)")

	name, err := c.take(fs)
	if err != nil {
		return nil, err
	}

	switch name {
	case "si":
		return rules.NewSI(*birth, *death), nil
	case "sir":
		return rules.NewSIR(*birth, *death), nil
	case "two-si":
		return rules.NewTwoSI(*birth, *death, *compete), nil
	case "voter":
		if *parties < 1 {
			return nil, fmt.Errorf("%w: voter -parties must be >= 1", ErrInvalidConfig)
		}
		return rules.NewVoter(*parties, *changeRate), nil
	default:
		return nil, fmt.Errorf("%w: unrecognized rule subcommand %q", ErrInvalidConfig, name)
	}
}

func parseInitial(c *cursor, g graph.Graph, r rules.RuleSet) ([]rules.State, error) {
	fs := flag.NewFlagSet("initial", flag.ContinueOnError)
	state := fs.Int("state", 1, "seeded state (different-particles)")
	indices := fs.String("indices", "", "comma-separated vertex indices (different-particles)")
	seed := fs.Uint64("seed", 1, "random seed (random)")

	name, err := c.take(fs)
	if err != nil {
		return nil, err
	}

	switch name {
	case "random":
		return initial.Random(g.VertexCount(), r, rand.NewSource(*seed)), nil
	case "different-particles":
		idxInts, err := parseIntList(*indices)
		if err != nil {
			return nil, fmt.Errorf("%w: -indices: %v", ErrInvalidConfig, err)
		}
		cfg, err := initial.DifferentParticles(g.VertexCount(), rules.State(*state), idxInts)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		return cfg, nil
	default:
		return nil, fmt.Errorf("%w: unrecognized initial subcommand %q", ErrInvalidConfig, name)
	}
}

func parseHalt(c *cursor) (policy.Halt, error) {
	fs := flag.NewFlagSet("halt", flag.ContinueOnError)
	t := fs.Float64("t", 0, "time budget (time-passed)")
	s := fs.Int("s", 0, "snapshot budget (steps-recorded)")
	e := fs.Int("e", 0, "event budget (steps-taken)")

	name, err := c.take(fs)
	if err != nil {
		return nil, err
	}

	switch name {
	case "time-passed":
		return policy.TimePassed{T: *t}, nil
	case "steps-recorded":
		return policy.StepsRecorded{S: *s}, nil
	case "steps-taken":
		return policy.StepsTaken{E: *e}, nil
	default:
		return nil, fmt.Errorf("%w: unrecognized halt subcommand %q", ErrInvalidConfig, name)
	}
}

func parseRecord(c *cursor) (policy.Record, error) {
	fs := flag.NewFlagSet("record", flag.ContinueOnError)
	n := fs.Int("n", 1, "period in events (nth-step)")
	tau := fs.Float64("tau", 1, "period in simulated time (constant-time)")

	name, err := c.take(fs)
	if err != nil {
		return nil, err
	}

	switch name {
	case "final":
		return policy.FinalOnly{}, nil
	case "nth-step":
		if *n < 1 {
			return nil, fmt.Errorf("%w: nth-step -n must be >= 1", ErrInvalidConfig)
		}
		return policy.NthStep{N: *n}, nil
	case "constant-time":
		return policy.ConstantTime{Tau: *tau}, nil
	default:
		return nil, fmt.Errorf("%w: unrecognized record subcommand %q", ErrInvalidConfig, name)
	}
}

type outputArgs struct {
	path       string
	height     int
	msPerFrame int
}

func parseOutput(c *cursor) (string, outputArgs, error) {
	fs := flag.NewFlagSet("output", flag.ContinueOnError)
	path := fs.String("path", "", "output file path")
	height := fs.Int("height", 0, "grid height (image-gif)")
	ms := fs.Int("ms-per-frame", 100, "milliseconds per frame (image-gif)")

	name, err := c.take(fs)
	if err != nil {
		return "", outputArgs{}, err
	}
	if *path == "" {
		return "", outputArgs{}, fmt.Errorf("%w: output -path is required", ErrInvalidConfig)
	}

	switch name {
	case "image-growth":
		return name, outputArgs{path: *path}, nil
	case "image-gif":
		if *height <= 0 {
			return "", outputArgs{}, fmt.Errorf("%w: image-gif -height must be > 0", ErrInvalidConfig)
		}
		return name, outputArgs{path: *path, height: *height, msPerFrame: *ms}, nil
	default:
		return "", outputArgs{}, fmt.Errorf("%w: unrecognized output subcommand %q", ErrInvalidConfig, name)
	}
}

func parseIntList(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseBoolList(s string) ([]bool, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]bool, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseBool(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
