package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Site records a domain this tool has provisioned.
type Site struct {
	Domain    string    `yaml:"domain"`
	Port      int       `yaml:"port"`
	Redirect  bool      `yaml:"redirect"`
	CertPath  string    `yaml:"cert_path,omitempty"`
	KeyPath   string    `yaml:"key_path,omitempty"`
	CreatedAt time.Time `yaml:"created_at"`
	UpdatedAt time.Time `yaml:"updated_at,omitempty"`
}

// Registry is the persistent record of managed sites.
type Registry struct {
	Sites map[string]*Site `yaml:"sites"`

	path string
}

const (
	registryDir  = ".config/sslauto"
	registryFile = "sites.yaml"
)

// RegistryPath returns the registry file location under the user's
// home directory.
func RegistryPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, registryDir, registryFile), nil
}

// NewRegistry creates an empty registry that will persist to path.
func NewRegistry(path string) *Registry {
	return &Registry{
		Sites: make(map[string]*Site),
		path:  path,
	}
}

// LoadRegistry reads the registry from path, returning an empty
// registry when the file does not exist yet.
func LoadRegistry(path string) (*Registry, error) {
	reg := NewRegistry(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return reg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read site registry: %w", err)
	}

	if err := yaml.Unmarshal(data, reg); err != nil {
		return nil, fmt.Errorf("failed to parse site registry: %w", err)
	}
	if reg.Sites == nil {
		reg.Sites = make(map[string]*Site)
	}
	return reg, nil
}

// Save writes the registry back to disk, creating the parent directory
// when needed.
func (r *Registry) Save() error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create registry directory: %w", err)
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal site registry: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write site registry: %w", err)
	}
	return nil
}

// Put adds or replaces the record for a site. Re-provisioning an
// existing domain updates it in place and stamps UpdatedAt.
func (r *Registry) Put(site *Site) {
	if existing, ok := r.Sites[site.Domain]; ok {
		site.CreatedAt = existing.CreatedAt
		site.UpdatedAt = time.Now().UTC()
	} else if site.CreatedAt.IsZero() {
		site.CreatedAt = time.Now().UTC()
	}
	r.Sites[site.Domain] = site
}

// Get returns the record for a domain, if present.
func (r *Registry) Get(domain string) (*Site, bool) {
	site, ok := r.Sites[domain]
	return site, ok
}

// Delete removes the record for a domain. Deleting an absent domain is
// a no-op.
func (r *Registry) Delete(domain string) {
	delete(r.Sites, domain)
}

// List returns all recorded sites.
func (r *Registry) List() []*Site {
	sites := make([]*Site, 0, len(r.Sites))
	for _, s := range r.Sites {
		sites = append(sites, s)
	}
	return sites
}
