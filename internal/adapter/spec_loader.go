package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	m "gradeline.dev/pkg/gradeline/internal/model"
)

// SpecStore loads grading specs.
type SpecStore interface {
	LoadSpec(ctx context.Context, path m.Path) (m.GradingSpec, error)
}

// YAMLSpecStore reads grading specs from YAML files.
type YAMLSpecStore struct {
	validate *validator.Validate
}

// NewYAMLSpecStore constructs a YAMLSpecStore.
func NewYAMLSpecStore() *YAMLSpecStore {
	return &YAMLSpecStore{validate: validator.New(validator.WithRequiredStructEnabled())}
}

type rawSpec struct {
	Build           m.BuildConfig     `yaml:"build"`
	Parts           []rawPart         `yaml:"gradedParts"`
	SubmissionFiles m.SubmissionFiles `yaml:"submissionFiles"`
}

type rawPart struct {
	Name              string      `yaml:"name"`
	HideUntilReleased bool        `yaml:"hide_until_released"`
	Units             []yaml.Node `yaml:"gradedUnits"`
}

// unitProbe captures the fields that decide a unit's variant.
type unitProbe struct {
	Kind      m.UnitKind `yaml:"kind"`
	Name      string     `yaml:"name"`
	Tests     []string   `yaml:"tests"`
	Locations []string   `yaml:"locations"`
}

// LoadSpec reads, decodes and validates the grading spec at path.
func (s *YAMLSpecStore) LoadSpec(_ context.Context, path m.Path) (m.GradingSpec, error) {
	// #nosec G304 - the spec path is provided by the instructor
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.GradingSpec{}, fmt.Errorf("read grading spec: %w", err)
	}

	return s.ParseSpec(data)
}

// ParseSpec decodes and validates a grading spec document.
func (s *YAMLSpecStore) ParseSpec(data []byte) (m.GradingSpec, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var raw rawSpec
	if err := decoder.Decode(&raw); err != nil {
		return m.GradingSpec{}, &m.ConfigError{Reason: fmt.Sprintf("decode grading spec: %v", err)}
	}

	spec := m.GradingSpec{
		Build:           raw.Build,
		SubmissionFiles: raw.SubmissionFiles,
		Parts:           make([]m.GradedPart, 0, len(raw.Parts)),
	}

	for _, part := range raw.Parts {
		units, err := s.decodeUnits(part.Units)
		if err != nil {
			return m.GradingSpec{}, err
		}

		spec.Parts = append(spec.Parts, m.GradedPart{
			Name:              part.Name,
			HideUntilReleased: part.HideUntilReleased,
			Units:             units,
		})
	}

	applyDefaults(&spec)

	if err := s.Validate(spec); err != nil {
		return m.GradingSpec{}, err
	}

	return spec, nil
}

func applyDefaults(spec *m.GradingSpec) {
	spec.Build.Timeouts = spec.Build.Timeouts.WithDefaults()

	if spec.Build.Linter.Policy == "" {
		spec.Build.Linter.Policy = m.LinterWarn
	}
}

func (s *YAMLSpecStore) decodeUnits(nodes []yaml.Node) ([]m.GradedUnit, error) {
	units := make([]m.GradedUnit, 0, len(nodes))

	for i := range nodes {
		node := &nodes[i]

		var probe unitProbe
		if err := node.Decode(&probe); err != nil {
			return nil, &m.ConfigError{Reason: fmt.Sprintf("line %d: decode graded unit: %v", node.Line, err)}
		}

		kind := probe.Kind
		if kind == "" {
			kind = inferUnitKind(probe)
		}

		switch kind {
		case m.UnitRegular:
			var unit struct {
				Kind              m.UnitKind `yaml:"kind"`
				m.RegularTestUnit `yaml:",inline"`
			}
			if err := node.Decode(&unit); err != nil {
				return nil, &m.ConfigError{Unit: probe.Name, Reason: err.Error()}
			}

			units = append(units, unit.RegularTestUnit)
		case m.UnitMutation:
			var unit struct {
				Kind               m.UnitKind `yaml:"kind"`
				m.MutationTestUnit `yaml:",inline"`
			}
			if err := node.Decode(&unit); err != nil {
				return nil, &m.ConfigError{Unit: probe.Name, Reason: err.Error()}
			}

			units = append(units, unit.MutationTestUnit)
		default:
			return nil, &m.ConfigError{
				Unit:   probe.Name,
				Reason: fmt.Sprintf("line %d: unrecognized graded unit (expected tests or locations)", node.Line),
			}
		}
	}

	return units, nil
}

func inferUnitKind(probe unitProbe) m.UnitKind {
	switch {
	case len(probe.Locations) > 0 && len(probe.Tests) == 0:
		return m.UnitMutation
	case len(probe.Tests) > 0 && len(probe.Locations) == 0:
		return m.UnitRegular
	default:
		return ""
	}
}

// Validate checks struct constraints and the cross-field rules of a spec.
func (s *YAMLSpecStore) Validate(spec m.GradingSpec) error {
	if !IsKnownPreset(spec.Build.Preset) {
		return &m.ConfigError{Reason: fmt.Sprintf("unrecognized build preset %q", spec.Build.Preset)}
	}

	if err := s.validate.Struct(spec); err != nil {
		return &m.ConfigError{Reason: describeValidation(err)}
	}

	for _, part := range spec.Parts {
		for _, unit := range part.Units {
			if err := s.validateUnit(unit); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *YAMLSpecStore) validateUnit(unit m.GradedUnit) error {
	switch u := unit.(type) {
	case m.RegularTestUnit:
		if err := s.validate.Struct(u); err != nil {
			return &m.ConfigError{Unit: u.Name, Reason: describeValidation(err)}
		}
	case m.MutationTestUnit:
		if err := s.validate.Struct(u); err != nil {
			return &m.ConfigError{Unit: u.Name, Reason: describeValidation(err)}
		}

		if _, _, err := u.Resolve(); err != nil {
			return err
		}
	default:
		return &m.ConfigError{Reason: fmt.Sprintf("unrecognized graded unit %T", unit)}
	}

	return nil
}

func describeValidation(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}

	problems := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		problems = append(problems, fmt.Sprintf("%s fails %q", fieldErr.Namespace(), fieldErr.Tag()))
	}

	return strings.Join(problems, "; ")
}
