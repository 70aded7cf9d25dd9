package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ProfilesConfig holds all named API profiles and tracks which one is
// active. Environment variables win over the active profile.
type ProfilesConfig struct {
	Active   string             `toml:"active"`
	Profiles map[string]Profile `toml:"profiles"`
}

// Profile is a named backend connection.
type Profile struct {
	URL         string `toml:"url"`
	Token       string `toml:"token,omitempty"`
	NATSURL     string `toml:"nats_url,omitempty"`
	Description string `toml:"description,omitempty"`
}

// ProfilesPath returns the profile file location, creating its parent
// directory.
func ProfilesPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".local", "state", "levemagi")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "profiles.toml"), nil
}

// LoadProfiles reads the profile file; an absent file yields an empty
// config.
func LoadProfiles() (ProfilesConfig, error) {
	path, err := ProfilesPath()
	if err != nil {
		return ProfilesConfig{}, err
	}
	return loadProfilesFrom(path)
}

func loadProfilesFrom(path string) (ProfilesConfig, error) {
	var cfg ProfilesConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return ProfilesConfig{Profiles: map[string]Profile{}}, nil
		}
		return ProfilesConfig{}, err
	}
	if cfg.Profiles == nil {
		cfg.Profiles = map[string]Profile{}
	}
	return cfg, nil
}

// SaveProfiles writes the profile file with owner-only permissions
// (it can hold tokens).
func SaveProfiles(cfg ProfilesConfig) error {
	path, err := ProfilesPath()
	if err != nil {
		return err
	}
	return saveProfilesTo(path, cfg)
}

func saveProfilesTo(path string, cfg ProfilesConfig) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// ActiveProfile resolves the currently active profile.
func (c ProfilesConfig) ActiveProfile() (Profile, error) {
	if c.Active == "" {
		return Profile{}, fmt.Errorf("no active profile")
	}
	p, ok := c.Profiles[c.Active]
	if !ok {
		return Profile{}, fmt.Errorf("active profile %q not found", c.Active)
	}
	return p, nil
}
