// Package config provides the configuration loader for regen.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/regen/internal/core/domain"
	"go.trai.ch/regen/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// StagingEnvVar overrides the manifest's staging base directory when set.
const StagingEnvVar = "REGEN_STAGING"

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct{}

// Load reads the manifest at the given path.
func (l *FileConfigLoader) Load(path string) (*domain.Manifest, error) {
	return Load(path)
}

// Load reads a manifest file and returns the domain representation. The
// workspace root is the manifest's directory; REGEN_STAGING, when set,
// overrides the declared staging base.
func Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest")
	}

	var dto Manifest
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, "failed to parse manifest")
	}

	root, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve workspace root")
	}

	staging := dto.Staging
	if env := os.Getenv(StagingEnvVar); env != "" {
		staging = env
	}

	m := &domain.Manifest{
		Workspace: domain.Workspace{
			Root:        root,
			StagingBase: staging,
		},
	}

	seen := make(map[string]bool, len(dto.Variants))
	keys := make(map[string]bool, len(dto.Variants))
	for _, v := range dto.Variants {
		if v.Name == "" {
			return nil, zerr.New("variant is missing a name")
		}
		if seen[v.Name] {
			return nil, zerr.With(zerr.New("duplicate variant name"), "variant", v.Name)
		}
		seen[v.Name] = true

		if v.Key == "" {
			return nil, zerr.With(zerr.New("variant is missing a cache key"), "variant", v.Name)
		}
		if keys[v.Key] {
			return nil, zerr.With(zerr.New("duplicate cache key"), "key", v.Key)
		}
		keys[v.Key] = true

		spec, err := toJobSpec(v)
		if err != nil {
			return nil, err
		}
		m.Variants = append(m.Variants, spec)
	}

	if dto.Bootstrap != nil {
		b, err := toBootstrapSpec(dto.Bootstrap)
		if err != nil {
			return nil, err
		}
		m.Bootstrap = b
	}

	return m, nil
}

func toJobSpec(v VariantDTO) (domain.JobSpec, error) {
	steps := make([]domain.StepSpec, 0, len(v.Steps))
	for _, s := range v.Steps {
		if (s.Program == "") == (s.Tool == "") {
			return domain.JobSpec{}, zerr.With(
				zerr.New("step must declare exactly one of program or tool"), "variant", v.Name)
		}
		steps = append(steps, domain.StepSpec{
			Program: s.Program,
			Tool:    s.Tool,
			Dir:     s.Dir,
			Args:    s.Args,
			Env:     s.Env,
		})
	}
	if len(steps) == 0 {
		return domain.JobSpec{}, zerr.With(zerr.New("variant declares no steps"), "variant", v.Name)
	}

	return domain.JobSpec{
		Name:    v.Name,
		Key:     v.Key,
		Inputs:  v.Inputs,
		Steps:   steps,
		Outputs: v.Outputs,
		Index:   v.Index,
	}, nil
}

func toBootstrapSpec(b *BootstrapDTO) (*domain.BootstrapSpec, error) {
	switch {
	case b.Upstream == "":
		return nil, zerr.New("bootstrap is missing the upstream URL")
	case b.Checkout == "":
		return nil, zerr.New("bootstrap is missing the checkout directory")
	case b.Seed == "":
		return nil, zerr.New("bootstrap is missing the project seed file")
	case b.Tool == "":
		return nil, zerr.New("bootstrap is missing the tool name")
	}

	return &domain.BootstrapSpec{
		Upstream:     b.Upstream,
		Checkout:     b.Checkout,
		Seed:         b.Seed,
		Tool:         b.Tool,
		Args:         b.Args,
		Generates:    b.Generates,
		PluginInputs: b.PluginInputs,
	}, nil
}
