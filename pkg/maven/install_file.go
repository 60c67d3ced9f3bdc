package maven

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// installFile is the subset of a rules_jvm_external maven_install.json that
// carries resolved artifacts.  Version 1 lock files list a dependency tree;
// later versions key artifacts by module id.
type installFile struct {
	DependencyTree *struct {
		Dependencies []struct {
			Coord    string   `json:"coord"`
			Packages []string `json:"packages"`
		} `json:"dependencies"`
	} `json:"dependency_tree"`
	Artifacts map[string]struct {
		Version string `json:"version"`
	} `json:"artifacts"`
}

// LoadInstallFile reads the artifacts resolved in a maven_install.json file.
// Coordinates are returned in file order for version 1 files and sorted by
// module id otherwise.
func LoadInstallFile(filename string) ([]Coordinate, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	var f installFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	var coords []Coordinate
	if f.DependencyTree != nil {
		for _, dep := range f.DependencyTree.Dependencies {
			c, err := ParseCoordinate(dep.Coord)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", filename, err)
			}
			coords = append(coords, c)
		}
		return coords, nil
	}

	keys := make([]string, 0, len(f.Artifacts))
	for k := range f.Artifacts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		// keys carry no version, so a four part key is packaging:classifier.
		c, err := ParseCoordinate(k + ":" + f.Artifacts[k].Version)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		coords = append(coords, c)
	}
	return coords, nil
}
