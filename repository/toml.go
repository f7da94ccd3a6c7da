package repository

import "github.com/BurntSushi/toml"

// cargoManifest covers only the fields crate-name extraction needs; Cargo.toml
// carries far more (dependencies, features, workspace members) that this
// module has no use for.
type cargoManifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
}

func cargoPackageName(path string) string {
	var manifest cargoManifest
	if _, err := toml.DecodeFile(path, &manifest); err != nil {
		return ""
	}
	return manifest.Package.Name
}

// pyProjectManifest reads both the PEP 621 [project] table and the older
// Poetry [tool.poetry] table, since pyproject.toml files in the wild use
// either.
type pyProjectManifest struct {
	Project struct {
		Name string `toml:"name"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Name string `toml:"name"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

func pyProjectName(path string) string {
	var manifest pyProjectManifest
	if _, err := toml.DecodeFile(path, &manifest); err != nil {
		return ""
	}
	if manifest.Project.Name != "" {
		return manifest.Project.Name
	}
	return manifest.Tool.Poetry.Name
}
