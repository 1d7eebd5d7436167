package lock

// FileName is the lock file written into the libs directory.
const FileName = "libs.lock.yaml"

// File represents libs.lock.yaml.
type File struct {
	Version     int                 `yaml:"version"`
	GeneratedAt string              `yaml:"generated_at"`
	ToolVersion string              `yaml:"tool_version"`
	Libraries   map[string]*Library `yaml:"libraries"`
}

// Library records the pinned state of a single integrated library.
type Library struct {
	URL    string `yaml:"url,omitempty"`
	Commit string `yaml:"commit"`
}
