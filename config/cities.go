package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrUnknownCity is returned when a city has no backing file in the registry.
var ErrUnknownCity = errors.New("city not in registry")

// Washington is the one city whose source lacks Gender and Birth Year columns.
const Washington = "washington"

var defaultCities = map[string]string{
	"chicago":       "chicago.csv",
	"new york city": "new_york_city.csv",
	Washington:      "washington.csv",
}

type citiesFile struct {
	Cities map[string]string `yaml:"cities" validate:"required,min=1,dive,keys,required,endkeys,required"`
}

// Registry maps canonical lowercase city names to data file paths.
// It is built once at startup and never modified.
type Registry struct {
	files map[string]string
	names []string
}

// NewRegistry returns the built-in registry rooted at dataDir.
func NewRegistry(dataDir string) *Registry {
	return newRegistry(dataDir, defaultCities)
}

// LoadRegistry builds the registry from cfg: the YAML file named by
// CitiesFile when set, the built-in cities otherwise.
func LoadRegistry(cfg *Config) (*Registry, error) {
	if cfg.CitiesFile == "" {
		return NewRegistry(cfg.DataDir), nil
	}

	data, err := os.ReadFile(cfg.CitiesFile)
	if err != nil {
		return nil, fmt.Errorf("config: read cities file %q: %w", cfg.CitiesFile, err)
	}

	var cf citiesFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("config: parse cities file %q: %w", cfg.CitiesFile, err)
	}
	if err := validator.New().Struct(cf); err != nil {
		return nil, fmt.Errorf("config: cities file %q: %w", cfg.CitiesFile, err)
	}

	return newRegistry(cfg.DataDir, cf.Cities), nil
}

func newRegistry(dataDir string, cities map[string]string) *Registry {
	r := &Registry{files: make(map[string]string, len(cities))}
	for name, file := range cities {
		key := strings.ToLower(strings.TrimSpace(name))
		if !filepath.IsAbs(file) {
			file = filepath.Join(dataDir, file)
		}
		r.files[key] = file
		r.names = append(r.names, key)
	}
	sort.Strings(r.names)
	return r
}

// Lookup returns the data file path for city.
func (r *Registry) Lookup(city string) (string, error) {
	path, ok := r.files[city]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCity, city)
	}
	return path, nil
}

// Cities returns the registered city names in sorted order.
func (r *Registry) Cities() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
