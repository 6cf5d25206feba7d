package config

import (
	"os"

	"github.com/aalvaropc/drills/internal/domain"
	"gopkg.in/yaml.v3"
)

func LoadDrillSet(path string) (domain.DrillSet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DrillSet{}, &domain.OpError{
			Op:   "config.load_drillset",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	return ParseDrillSet(path, b)
}

// ParseDrillSet decodes and validates a drill set document.
func ParseDrillSet(path string, b []byte) (domain.DrillSet, error) {
	var dto YAMLDrillSet
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.DrillSet{}, &domain.OpError{
			Op:   "config.load_drillset",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapDrillSet(path, dto)
}
