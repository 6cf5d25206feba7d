package yamldrills

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/drills/internal/domain"
	"github.com/aalvaropc/drills/internal/infra/config"
	"github.com/aalvaropc/drills/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct {
	rootDir   string
	drillsDir string
}

type Option func(*Loader)

func WithDrillsDir(dir string) Option {
	return func(l *Loader) {
		if strings.TrimSpace(dir) != "" {
			l.drillsDir = dir
		}
	}
}

func NewLoader(root string, opts ...Option) *Loader {
	l := &Loader{rootDir: root, drillsDir: "drills"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var (
	_ ports.DrillLoader  = (*Loader)(nil)
	_ ports.DrillCatalog = (*Loader)(nil)
)

// LoadDrillSet accepts either a drill set name (e.g., "basics") or a path to a YAML file.
func (l *Loader) LoadDrillSet(nameOrPath string) (domain.DrillSet, error) {
	return config.LoadDrillSet(l.Resolve(nameOrPath))
}

// Resolve maps a name to a file under the drills dir. Paths are returned cleaned.
// Names that match no file fall back to the "name" field of the listed sets.
func (l *Loader) Resolve(nameOrPath string) string {
	in := strings.TrimSpace(nameOrPath)
	if hasYAMLExt(in) || strings.ContainsRune(in, '/') || strings.ContainsRune(in, filepath.Separator) {
		p := filepath.Clean(in)
		if !filepath.IsAbs(p) && !fileExists(p) && l.rootDir != "" {
			if alt := filepath.Join(l.rootDir, l.drillsDir, p); fileExists(alt) {
				return alt
			}
		}
		return p
	}

	dir := filepath.Join(l.rootDir, l.drillsDir)
	for _, ext := range []string{".yaml", ".yml"} {
		p := filepath.Join(dir, in+ext)
		if fileExists(p) {
			return p
		}
	}

	if refs, err := l.ListDrillSets(l.rootDir); err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path
			}
		}
	}

	return filepath.Join(dir, in+".yaml")
}

func (l *Loader) ListDrillSets(root string) ([]domain.DrillSetRef, error) {
	dir := filepath.Join(root, l.drillsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamldrills.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.DrillSetRef
	for _, e := range entries {
		if e.IsDir() || !hasYAMLExt(e.Name()) {
			continue
		}

		p := filepath.Join(dir, e.Name())
		n, _ := readDrillSetName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		}

		refs = append(refs, domain.DrillSetRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func readDrillSetName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
