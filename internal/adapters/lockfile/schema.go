package lockfile

// assetsFile is the subset of obj/project.assets.json that is read.
type assetsFile struct {
	Version int                                `json:"version"`
	Targets map[string]map[string]assetsEntry `json:"targets"`
}

// assetsEntry is keyed by "<name>/<version>".
type assetsEntry struct {
	Type         string            `json:"type"`
	Dependencies map[string]string `json:"dependencies"`
}

// packagesLockFile is the subset of packages.lock.json that is read.
type packagesLockFile struct {
	Version      int                                     `json:"version"`
	Dependencies map[string]map[string]packagesLockEntry `json:"dependencies"`
}

// packagesLockEntry is keyed by package name.
type packagesLockEntry struct {
	Type         string            `json:"type"`
	Requested    string            `json:"requested"`
	Resolved     string            `json:"resolved"`
	Dependencies map[string]string `json:"dependencies"`
}
