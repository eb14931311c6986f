// Package artifact loads fitted pipeline parameters from a versioned
// artifact file. The artifact is produced by the offline training
// procedure and is treated as a frozen model object: parameters are
// deserialized once at startup into an immutable regression.Pipeline.
package artifact

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ynstf/boston-housing-api/domain/regression"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the artifact schema version this build understands.
const SupportedVersion = 1

// Artifact load errors.
var (
	ErrUnsupportedVersion = errors.New("unsupported artifact version")
	ErrUnsupportedFormat  = errors.New("unsupported artifact format")
	ErrUnsupportedDegree  = errors.New("unsupported expansion degree")
)

//go:embed pipeline.json
var defaultArtifact []byte

// Artifact holds the serialized parameters of a fitted pipeline.
type Artifact struct {
	Version      int       `json:"version" yaml:"version"`
	Degree       int       `json:"degree" yaml:"degree"`
	Alpha        float64   `json:"alpha" yaml:"alpha"`
	Features     []string  `json:"features" yaml:"features"`
	Means        []float64 `json:"means" yaml:"means"`
	StdDevs      []float64 `json:"stddevs" yaml:"stddevs"`
	Coefficients []float64 `json:"coefficients" yaml:"coefficients"`
	Intercept    float64   `json:"intercept" yaml:"intercept"`
}

// Load reads an artifact from path. The format is chosen by extension:
// .json, or .yaml/.yml.
func Load(path string) (Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("read artifact: %w", err)
	}

	var a Artifact
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &a)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &a)
	default:
		return Artifact{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return Artifact{}, fmt.Errorf("parse artifact %s: %w", path, err)
	}
	return a, nil
}

// Default returns the artifact embedded in the binary, fitted on the
// Boston housing training set with ridge penalty alpha=10.
func Default() Artifact {
	var a Artifact
	if err := json.Unmarshal(defaultArtifact, &a); err != nil {
		// The embedded artifact is validated by tests; a parse failure
		// here means a corrupted build.
		panic(fmt.Sprintf("artifact: embedded pipeline is invalid: %v", err))
	}
	return a
}

// Pipeline validates the artifact and constructs the immutable fitted
// pipeline from it.
func (a Artifact) Pipeline() (regression.Pipeline, error) {
	if a.Version != SupportedVersion {
		return regression.Pipeline{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, a.Version)
	}
	if a.Degree != regression.Degree {
		return regression.Pipeline{}, fmt.Errorf("%w: %d", ErrUnsupportedDegree, a.Degree)
	}
	return regression.NewPipeline(a.Features, a.Means, a.StdDevs, a.Coefficients, a.Intercept)
}

// LoadPipeline loads a pipeline from path, or the embedded default when
// path is empty.
func LoadPipeline(path string) (regression.Pipeline, error) {
	a := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return regression.Pipeline{}, err
		}
		a = loaded
	}
	return a.Pipeline()
}
