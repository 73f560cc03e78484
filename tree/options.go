package tree

import (
	"io"

	"github.com/arloliu/huffman/internal/options"
)

// buildConfig holds configuration applied by build options.
type buildConfig struct {
	trace io.Writer
}

// BuildOption is a functional option for Build.
type BuildOption = options.Option[*buildConfig]

// WithTrace emits a human-readable structural dump of the finished tree to w.
//
// The trace is a diagnostic side channel; it does not affect the functional
// result of the build. See Tree.Dump for the format.
func WithTrace(w io.Writer) BuildOption {
	return options.NoError(func(cfg *buildConfig) {
		cfg.trace = w
	})
}

// applyBuildOptions applies opts to cfg in order.
func applyBuildOptions(cfg *buildConfig, opts []BuildOption) error {
	return options.Apply(cfg, opts...)
}
