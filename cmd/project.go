package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// ProjectFileName is the manifest a project directory carries in place of a
// bare source file path.
const ProjectFileName = "t.toml"

// tomlProjectFile represents the manifest as it is encoded in TOML
type tomlProjectFile struct {
	Project *tomlProject `toml:"project"`
}

// tomlProject represents a T project as it is encoded in TOML
type tomlProject struct {
	Name  string `toml:"name"`
	Entry string `toml:"entry"`
}

// Project is the loaded form of a t.toml manifest.
type Project struct {
	Name string
	// EntryPath is the absolute path of the source file to run.
	EntryPath string
}

// LoadProject reads and validates the manifest in the given directory.
func LoadProject(dir string) (*Project, error) {
	buff, err := os.ReadFile(filepath.Join(dir, ProjectFileName))
	if err != nil {
		return nil, err
	}

	tpf := &tomlProjectFile{}
	if err := toml.Unmarshal(buff, tpf); err != nil {
		return nil, err
	}

	if tpf.Project == nil {
		return nil, fmt.Errorf("missing [project] table in %s", ProjectFileName)
	}
	if tpf.Project.Name == "" {
		return nil, fmt.Errorf("missing project name for project at %s", dir)
	}
	if tpf.Project.Entry == "" {
		return nil, fmt.Errorf("missing entry file for project %s", tpf.Project.Name)
	}

	return &Project{
		Name:      tpf.Project.Name,
		EntryPath: filepath.Join(dir, tpf.Project.Entry),
	}, nil
}

// resolveSourcePath maps a CLI path argument to the source file to read: the
// path itself when it names a file, or the manifest's entry when it names a
// project directory.
func resolveSourcePath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return path, nil
	}
	project, err := LoadProject(path)
	if err != nil {
		return "", err
	}
	return project.EntryPath, nil
}
