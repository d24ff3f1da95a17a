package mods

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"github.com/Nadezhda94/SimpleJava/common"
)

// tomlModuleFile represents the module file as it is encoded in TOML.
type tomlModuleFile struct {
	Module *tomlModule `toml:"module"`
}

// tomlModule represents a SimpleJava module as it is encoded in TOML.
type tomlModule struct {
	Name          string         `toml:"name"`
	WordSize      int            `toml:"word-size,omitempty"`
	Version       string         `toml:"sj-version"`
	BuildProfiles []*tomlProfile `toml:"profiles"`
}

// tomlProfile represents a build profile as it is encoded in TOML.
type tomlProfile struct {
	Name        string `toml:"name"`
	Debug       bool   `toml:"debug"`
	DumpIR      bool   `toml:"dump-ir"`
	OutputPath  string `toml:"output,omitempty"`
	Primary     bool   `toml:"primary"` // in absence of a selection, choose this profile (same as default)
	DefaultProf bool   `toml:"default"` // in absence of build config, choose this profile
}

// LoadModule loads and validates a module as well as determining the correct
// profile (if one exists).  `path` is the path to the module directory.
// `selectedProfile` can be empty if there is no profile selected.  The
// `rootProfile` argument is populated with the selected profile's data; it can
// simply be an empty struct on initialization.  This function returns the
// deserialized module and an error value.
func LoadModule(path, selectedProfile string, rootProfile *BuildProfile) (*SJModule, error) {
	buff, err := os.ReadFile(filepath.Join(path, common.ModuleFileName))
	if err != nil {
		return nil, err
	}

	tmf := &tomlModuleFile{}
	if err := toml.Unmarshal(buff, tmf); err != nil {
		return nil, err
	}

	// sjMod is the final, extracted module that is returned.
	sjMod := &SJModule{
		// module root is the directory enclosing the module file
		ModuleRoot: path,
	}

	if err := validateModule(sjMod, tmf.Module); err != nil {
		return nil, err
	}

	if err := selectProfile(tmf.Module, selectedProfile, rootProfile); err != nil {
		return nil, err
	}

	sjMod.Name = tmf.Module.Name
	sjMod.WordSize = tmf.Module.WordSize

	return sjMod, nil
}

// validateModule checks that the top level module contents are valid.
func validateModule(smod *SJModule, mod *tomlModule) error {
	if mod == nil {
		return fmt.Errorf("missing module table in module at %s", smod.ModuleRoot)
	}

	if mod.Name == "" {
		return fmt.Errorf("missing module name for module at %s", smod.ModuleRoot)
	}

	if mod.Version != common.SJVersion {
		return fmt.Errorf("module `%s` requires version %s; current version is %s",
			mod.Name, mod.Version, common.SJVersion)
	}

	if mod.WordSize == 0 {
		mod.WordSize = common.DefaultWordSize
	} else if mod.WordSize < 0 || mod.WordSize%2 != 0 {
		return fmt.Errorf("module `%s` declares invalid word size %d", mod.Name, mod.WordSize)
	}

	return nil
}

// selectProfile selects and merges an appropriate build profile.  An explicit
// selection must name a declared profile; absent a selection, the first
// profile marked primary or default wins, then the first declared one.  A
// module with no profiles builds with the zero profile.
func selectProfile(mod *tomlModule, selectedProfile string, rootProfile *BuildProfile) error {
	if len(mod.BuildProfiles) == 0 {
		if selectedProfile != "" {
			return fmt.Errorf("module `%s` declares no profiles", mod.Name)
		}

		return nil
	}

	var chosen *tomlProfile
	for _, prof := range mod.BuildProfiles {
		switch {
		case selectedProfile != "" && prof.Name == selectedProfile:
			chosen = prof
		case selectedProfile == "" && chosen == nil && (prof.Primary || prof.DefaultProf):
			chosen = prof
		}

		if chosen != nil {
			break
		}
	}

	if chosen == nil {
		if selectedProfile != "" {
			return fmt.Errorf("module `%s` declares no profile named `%s`", mod.Name, selectedProfile)
		}

		chosen = mod.BuildProfiles[0]
	}

	rootProfile.Name = chosen.Name
	rootProfile.Debug = chosen.Debug
	rootProfile.DumpIR = chosen.DumpIR
	rootProfile.OutputPath = chosen.OutputPath

	return nil
}

// InitModule generates a new module file in the directory at the given path.
func InitModule(name, path string) error {
	modFilePath := filepath.Join(path, common.ModuleFileName)
	if _, err := os.Stat(modFilePath); err == nil {
		return fmt.Errorf("module already exists at %s", path)
	}

	tmf := &tomlModuleFile{Module: &tomlModule{
		Name:     name,
		WordSize: common.DefaultWordSize,
		Version:  common.SJVersion,
		BuildProfiles: []*tomlProfile{
			{Name: "debug", Debug: true, DumpIR: true, DefaultProf: true},
			{Name: "release"},
		},
	}}

	buff, err := toml.Marshal(tmf)
	if err != nil {
		return err
	}

	return os.WriteFile(modFilePath, buff, 0o644)
}
