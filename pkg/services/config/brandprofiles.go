package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"
)

// Profile is one named brand entry from the profiles file. The web surface
// lists these at startup and serves whichever the request names.
type Profile struct {
	Name       string
	Brand      string
	Period     string
	SourceKind string
	SourcePath string
}

type Registry interface {
	GetProfiles(ctx context.Context) ([]Profile, error)
	GetProfile(ctx context.Context, name string) (*Profile, error)
}

type profileRegistry struct {
	cfg *ini.File
}

// NewStaticRegistry serves a fixed set of profiles without a backing file.
// Used when no profiles file exists: the web surface still exposes the
// built-in dataset.
func NewStaticRegistry(profiles ...Profile) Registry {
	return staticRegistry(profiles)
}

type staticRegistry []Profile

func (sr staticRegistry) GetProfiles(_ context.Context) ([]Profile, error) {
	return append([]Profile{}, sr...), nil
}

func (sr staticRegistry) GetProfile(_ context.Context, name string) (*Profile, error) {
	for _, p := range sr {
		if p.Name == name {
			profile := p
			return &profile, nil
		}
	}
	return nil, fmt.Errorf("profile %s not found", name)
}

// NewRegistry loads an ini profiles file, one section per brand profile.
func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &profileRegistry{cfg: cfg}, nil
}

func (pr *profileRegistry) GetProfiles(ctx context.Context) ([]Profile, error) {
	var profiles []Profile
	for _, section := range pr.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profile, err := pr.GetProfile(ctx, section.Name())
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *profile)
	}
	return profiles, nil
}

func (pr *profileRegistry) GetProfile(_ context.Context, name string) (*Profile, error) {
	section := pr.cfg.Section(name)
	if section == nil || len(section.Keys()) == 0 {
		return nil, fmt.Errorf("profile %s not found", name)
	}

	profile := &Profile{
		Name:       name,
		Brand:      section.Key("brand").String(),
		Period:     section.Key("period").String(),
		SourceKind: section.Key("source_kind").String(),
		SourcePath: section.Key("source_path").String(),
	}
	if profile.Brand == "" {
		profile.Brand = name
	}
	if profile.SourceKind == "" {
		profile.SourceKind = "static"
	}
	return profile, nil
}
