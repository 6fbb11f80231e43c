package cli

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/orbita/action"
	"github.com/katalvlaran/orbita/points"
)

// Config describes an action of transformations on {0, …, degree-1} in TOML.
// Seeds and generators are image tables: entry i is the image of i.
type Config struct {
	// Side is "right" (default) or "left".
	Side string `toml:"side"`

	// Degree is the domain size; every image table must have this length
	// with entries in [0, degree).
	Degree int `toml:"degree"`

	// Seeds are the starting points of the enumeration.
	Seeds [][]uint32 `toml:"seeds"`

	// Generators act on the seeds and on every discovered point.
	Generators [][]uint32 `toml:"generators"`

	// RunFor bounds the enumeration, e.g. "500ms". Empty means run to
	// completion.
	RunFor string `toml:"run_for"`
}

// LoadConfig reads and validates a TOML action description.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Degree <= 0 {
		return fmt.Errorf("config: degree must be positive, got %d", c.Degree)
	}
	if c.Side != "" && c.Side != "right" && c.Side != "left" {
		return fmt.Errorf("config: side must be %q or %q, got %q", "right", "left", c.Side)
	}
	if len(c.Seeds) == 0 {
		return fmt.Errorf("config: at least one seed is required")
	}
	if len(c.Generators) == 0 {
		return fmt.Errorf("config: at least one generator is required")
	}
	for _, tbl := range append(slices.Clone(c.Seeds), c.Generators...) {
		if len(tbl) != c.Degree {
			return fmt.Errorf("config: image table %v has length %d, want degree %d",
				tbl, len(tbl), c.Degree)
		}
		for i, v := range tbl {
			if int(v) >= c.Degree {
				return fmt.Errorf("config: image %d of %d out of range [0, %d)", v, i, c.Degree)
			}
		}
	}
	return nil
}

// side returns the action side described by the config.
func (c *Config) side() action.Side {
	if c.Side == "left" {
		return action.Left
	}
	return action.Right
}

// runBudget parses RunFor; zero means unbounded.
func (c *Config) runBudget() (time.Duration, error) {
	if c.RunFor == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.RunFor)
	if err != nil {
		return 0, fmt.Errorf("config: bad run_for %q: %w", c.RunFor, err)
	}
	return d, nil
}

// transf is a total transformation of {0, …, n-1} as an image table. It is
// the CLI's demo element/point type; the library itself is generic and ships
// no element arithmetic.
type transf []uint32

// transfTraits returns the adapters for transformations acting on
// transformations by multiplication on the configured side.
func transfTraits(side action.Side) action.Traits[transf, transf] {
	compose := func(dst, f, g transf) transf {
		// (f·g)(i) = g(f(i)): appropriate for points under a right action.
		if len(dst) != len(f) {
			dst = make(transf, len(f))
		}
		for i := range f {
			dst[i] = g[f[i]]
		}
		return dst
	}
	act := func(dst, pt transf, gen transf) transf {
		if side == action.Left {
			// left action: (g·f)(i) = f(g(i))
			if len(dst) != len(pt) {
				dst = make(transf, len(pt))
			}
			for i := range pt {
				dst[i] = pt[gen[i]]
			}
			return dst
		}
		return compose(dst, pt, gen)
	}
	return action.Traits[transf, transf]{
		Act:   act,
		Hash:  func(p transf) uint64 { return points.HashUint32s(p) },
		Equal: func(p, q transf) bool { return slices.Equal(p, q) },
		Product: func(dst, x, y transf) transf {
			return compose(dst, x, y)
		},
		One: func(sample transf) transf {
			id := make(transf, len(sample))
			for i := range id {
				id[i] = uint32(i)
			}
			return id
		},
		Degree: func(g transf) int { return len(g) },
	}
}

// BuildAction constructs the configured action, ready to run.
func BuildAction(cfg *Config, logger *log.Logger) (*action.Action[transf, transf], error) {
	side := cfg.side()
	a, err := action.New(side, transfTraits(side),
		action.WithStore[transf](points.Boxed(func(p transf) transf { return slices.Clone(p) })),
		action.WithLogger[transf](logger),
	)
	if err != nil {
		return nil, err
	}
	for _, s := range cfg.Seeds {
		a.AddSeed(transf(s))
	}
	for _, g := range cfg.Generators {
		if err := a.AddGenerator(transf(g)); err != nil {
			return nil, err
		}
	}
	return a, nil
}
