package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/find/internal/backend/cpu"
	"github.com/born-ml/find/internal/operators"
	"github.com/born-ml/find/internal/tensor"
)

type findOptions struct {
	index     []int64
	needles   []int64
	missing   int64
	dtype     string
	backend   string
	threshold int
}

func newFindCmd() *cobra.Command {
	opts := &findOptions{}

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Print the last position of each needle in the index",
		Example: `  born-find find --index=1,2,3,2,1 --needles=2,4,1
  born-find find --index=5,3,5,7 --needles=5,9 --missing=-99 --dtype=int32`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFind(cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.Int64SliceVar(&opts.index, "index", nil, "comma-separated index values")
	flags.Int64SliceVar(&opts.needles, "needles", nil, "comma-separated needle values")
	flags.Int64Var(&opts.missing, "missing", operators.DefaultMissingValue, "value written for needles that are not found")
	flags.StringVar(&opts.dtype, "dtype", "int64", "element type: int32 or int64")
	flags.StringVar(&opts.backend, "backend", "cpu", "compute backend: cpu or webgpu")
	flags.IntVar(&opts.threshold, "threshold", cpu.DefaultBruteForceThreshold, "needle count below which the index is scanned directly")

	return cmd
}

func runFind(w io.Writer, opts *findOptions) error {
	dtype, err := tensor.ParseDataType(opts.dtype)
	if err != nil {
		return err
	}

	op := operators.NewFind(opts.missing)
	if err := op.Prepare(dtype, dtype); err != nil {
		return err
	}

	backend, release, err := openBackend(opts.backend, opts.threshold)
	if err != nil {
		return err
	}
	defer release()

	index, err := newTensor(opts.index, dtype, backend.Device())
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}
	needles, err := newTensor(opts.needles, dtype, backend.Device())
	if err != nil {
		return fmt.Errorf("needles: %w", err)
	}

	result, err := op.Run(backend, index, needles)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, formatValues(result))
	return err
}

// newTensor copies values into a 1-D tensor of dtype, rejecting values that overflow it.
func newTensor(values []int64, dtype tensor.DataType, device tensor.Device) (*tensor.RawTensor, error) {
	raw, err := tensor.NewRaw(tensor.Shape{len(values)}, dtype, device)
	if err != nil {
		return nil, err
	}

	switch dtype {
	case tensor.Int32:
		data := raw.AsInt32()
		for i, v := range values {
			if v < math.MinInt32 || v > math.MaxInt32 {
				return nil, fmt.Errorf("value %d at position %d overflows int32", v, i)
			}
			data[i] = int32(v)
		}
	case tensor.Int64:
		copy(raw.AsInt64(), values)
	default:
		return nil, fmt.Errorf("unsupported dtype %s", dtype)
	}
	return raw, nil
}

func formatValues(raw *tensor.RawTensor) string {
	parts := make([]string, 0, raw.NumElements())
	switch raw.DType() {
	case tensor.Int32:
		for _, v := range raw.AsInt32() {
			parts = append(parts, strconv.FormatInt(int64(v), 10))
		}
	case tensor.Int64:
		for _, v := range raw.AsInt64() {
			parts = append(parts, strconv.FormatInt(v, 10))
		}
	}
	return strings.Join(parts, ",")
}
