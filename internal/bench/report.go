package bench

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown report format")

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

type Report struct {
	RunID      string    `yaml:"run_id"`
	Started    time.Time `yaml:"started"`
	Iterations int       `yaml:"iterations"`
	Results    []Result  `yaml:"results"`
}

type Result struct {
	Size      int     `yaml:"size"`
	Kind      string  `yaml:"kind"`
	SliceNsOp float64 `yaml:"slice_ns_per_op"`
	VecNsOp   float64 `yaml:"vec_ns_per_op"`
	Speedup   float64 `yaml:"speedup"`
}

func newResult(size int, kind string, iters int, sliceTime, vecTime time.Duration) Result {
	r := Result{
		Size:      size,
		Kind:      kind,
		SliceNsOp: float64(sliceTime.Nanoseconds()) / float64(iters),
		VecNsOp:   float64(vecTime.Nanoseconds()) / float64(iters),
	}
	if vecTime > 0 {
		r.Speedup = float64(sliceTime) / float64(vecTime)
	}
	return r
}

// Encode writes the report as a text table or as YAML.
func (r *Report) Encode(w io.Writer, format string) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatText, "":
		return r.writeText(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func (r *Report) writeText(w io.Writer) error {
	fmt.Fprintf(w, "run %s, %d iterations per case\n", r.RunID, r.Iterations)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SIZE\tKIND\tSLICE ns/op\tVEC ns/op\tSPEEDUP")
	for _, res := range r.Results {
		fmt.Fprintf(tw, "%d\t%s\t%.2f\t%.2f\t%.2fx\n",
			res.Size, res.Kind, res.SliceNsOp, res.VecNsOp, res.Speedup)
	}
	return tw.Flush()
}
