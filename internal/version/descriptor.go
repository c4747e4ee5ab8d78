// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package version

// ArtifactKind keys Descriptor.Downloads
type ArtifactKind string

const (
	Client         ArtifactKind = "client"
	Server         ArtifactKind = "server"
	WindowsServer  ArtifactKind = "windows_server"
	ClientMappings ArtifactKind = "client_mappings"
	ServerMappings ArtifactKind = "server_mappings"
)

// Artifact references one downloadable file.
type Artifact struct {
	// Path is only set on library artifacts, and is the maven path of the file.
	Path string `json:"path,omitempty"`
	SHA1 string `json:"sha1"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

// Descriptor is the full record of one version, ex. 1.20.1.json
type Descriptor struct {
	ID   string  `json:"id"`
	Type Channel `json:"type,omitempty"`
	// Assets is the asset group ID, normally the same as AssetIndex.ID
	Assets      string                    `json:"assets"`
	AssetIndex  AssetIndexRef             `json:"assetIndex"`
	Downloads   map[ArtifactKind]Artifact `json:"downloads"`
	JavaVersion JavaVersion               `json:"javaVersion"`
	MainClass   string                    `json:"mainClass"`
	// MinecraftArguments is the space-delimited game arguments used before Arguments existed.
	MinecraftArguments string     `json:"minecraftArguments,omitempty"`
	Arguments          *Arguments `json:"arguments,omitempty"`
	Libraries          []Library  `json:"libraries"`
	Logging            *Logging   `json:"logging,omitempty"`
}

// AssetIndexRef locates the AssetIndex of a Descriptor.
type AssetIndexRef struct {
	ID        string `json:"id"`
	SHA1      string `json:"sha1"`
	Size      int64  `json:"size"`
	TotalSize int64  `json:"totalSize"`
	URL       string `json:"url"`
}

// JavaVersion names the runtime component the version runs under, ex. "java-runtime-gamma".
type JavaVersion struct {
	Component    string `json:"component"`
	MajorVersion int    `json:"majorVersion"`
}

// Library is a library as declared, before rules are evaluated. See SelectLibraries
type Library struct {
	// Name is the maven coordinate, ex. "org.lwjgl:lwjgl:3.3.1"
	Name      string           `json:"name"`
	Downloads LibraryDownloads `json:"downloads"`
	Rules     []Rule           `json:"rules,omitempty"`
	// Natives maps a native ID (ex. "linux") to a classifier template (ex. "natives-windows-${arch}").
	Natives map[string]string `json:"natives,omitempty"`
	Extract *Extract          `json:"extract,omitempty"`
}

// LibraryDownloads holds the plain artifact and native classifiers of a library. Either can be absent.
type LibraryDownloads struct {
	Artifact    *Artifact           `json:"artifact,omitempty"`
	Classifiers map[string]Artifact `json:"classifiers,omitempty"`
}

// Action is the effect of a Rule.
type Action string

const (
	Allow    Action = "allow"
	Disallow Action = "disallow"
)

// Rule conditionally gates a library or an argument.
type Rule struct {
	Action Action  `json:"action"`
	OS     *OSRule `json:"os,omitempty"`
}

// OSRule constrains a Rule to an operating system. Only Name is evaluated.
type OSRule struct {
	// Name is a native ID: "windows", "linux" or "osx".
	Name    string `json:"name,omitempty"`
	Arch    string `json:"arch,omitempty"`
	Version string `json:"version,omitempty"`
}

// Extract configures how a native library is unpacked.
type Extract struct {
	// Exclude are path prefixes inside the archive that are not extracted, ex. "META-INF/"
	Exclude []string `json:"exclude,omitempty"`
}

// Logging holds the logging configurations per side. Only "client" is used.
type Logging struct {
	Client *LoggingConfig `json:"client,omitempty"`
}

// LoggingConfig is a log4j configuration file and the JVM argument that enables it.
type LoggingConfig struct {
	// Argument includes a "${path}" placeholder, ex. "-Dlog4j.configurationFile=${path}"
	Argument string      `json:"argument"`
	File     LoggingFile `json:"file"`
	Type     string      `json:"type"`
}

// LoggingFile is like Artifact, except it carries an ID used as the file name.
type LoggingFile struct {
	ID   string `json:"id"`
	SHA1 string `json:"sha1"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

// ClientArtifact returns the client archive, if the version declares one.
func (d *Descriptor) ClientArtifact() (Artifact, bool) {
	a, ok := d.Downloads[Client]
	return a, ok && a.URL != ""
}
