// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package test

import (
	"archive/zip"
	"bytes"
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz/lzma"

	"github.com/RafaelrainBR/minecraft-launcher/internal/version"
)

const (
	// FakeVersion is a release with structured arguments, natives and a logging configuration.
	FakeVersion = "1.20.1"
	// FakeLegacyVersion uses minecraftArguments and a runtime component that isn't published.
	FakeLegacyVersion = "1.12.2"
	// FakeSnapshot has no client download.
	FakeSnapshot = "23w31a"
	// FakeMissingVersion is listed in the manifest, but its descriptor isn't served.
	FakeMissingVersion = "b1.7.3"

	FakeAssetIndexID = "5"
	FakeComponent    = "java-runtime-gamma"
	FakeMainClass    = "net.minecraft.client.main.Main"
	// FakeNativeFile is the only file extracted from every native classifier.
	FakeNativeFile = "liblwjgl64.so"
	// FakeLoggingFile is the ID of the logging configuration of FakeVersion.
	FakeLoggingFile = "client-1.12.xml"
)

// FakeLibraryPaths are the paths of the libraries of FakeVersion for linux relative to the libraries directory, in
// classpath order. Each is also the path it is served at.
var FakeLibraryPaths = []string{
	"com/mojang/logging/1.1.1/logging-1.1.1.jar",
	"org/lwjgl/lwjgl/3.3.1/lwjgl-3.3.1.jar",
	"org/lwjgl/lwjgl-glfw/3.3.1/lwjgl-glfw-3.3.1.jar",
}

// FakeNativesPath is the path of the linux native classifier, relative to the libraries directory.
const FakeNativesPath = "org/lwjgl/lwjgl-platform/2.9.4/lwjgl-platform-2.9.4-natives-linux.jar"

// FakeAssetObjects are the logical paths and contents of the asset index.
var FakeAssetObjects = map[string]string{
	"icons/icon_16x16.png":                    "icon",
	"minecraft/sounds/ambient/cave/cave1.ogg": "cave",
}

// FakeJava is the "bin/java" of the fake runtime: a shell script that prints its working directory and arguments,
// one per line. It exits with the value of $FAKE_JAVA_EXIT_CODE, or zero if unset.
const FakeJava = `#!/bin/sh
echo "cwd=$(pwd)"
for arg in "$@"; do
  echo "$arg"
done
exit ${FAKE_JAVA_EXIT_CODE:-0}
`

// FakeRuntimeFiles are the regular files of the fake runtime and their content.
var FakeRuntimeFiles = map[string]string{
	"bin/java":    FakeJava,
	"lib/modules": "modules",
	"release":     `JAVA_VERSION="17.0.8"`,
}

type distribution struct {
	t       *testing.T
	baseURL string
	files   map[string][]byte
}

func requireFakeDistribution(t *testing.T, baseURL string) map[string][]byte {
	d := &distribution{t: t, baseURL: baseURL, files: map[string][]byte{}}

	release := d.descriptor()
	legacy := &version.Descriptor{
		ID:                 FakeLegacyVersion,
		Type:               version.Release,
		Assets:             "1.12",
		AssetIndex:         d.assetIndex("1.12"),
		Downloads:          map[version.ArtifactKind]version.Artifact{version.Client: d.serve("/v1/objects/client-1.12.2.jar", []byte("client 1.12.2"))},
		JavaVersion:        version.JavaVersion{Component: "jre-legacy", MajorVersion: 8},
		MainClass:          FakeMainClass,
		MinecraftArguments: "--username ${auth_player_name} --version ${version_name} --userProperties ${user_properties}",
		Libraries:          release.Libraries[:1],
	}
	snapshot := &version.Descriptor{
		ID:          FakeSnapshot,
		Type:        version.Snapshot,
		Assets:      FakeAssetIndexID,
		AssetIndex:  release.AssetIndex,
		Downloads:   map[version.ArtifactKind]version.Artifact{version.Server: release.Downloads[version.Server]},
		JavaVersion: release.JavaVersion,
		MainClass:   FakeMainClass,
		Arguments:   release.Arguments,
	}

	manifest := &version.Manifest{
		Latest: version.Latest{Release: FakeVersion, Snapshot: FakeSnapshot},
		Versions: []version.ManifestVersion{
			d.manifestVersion(snapshot, "2023-08-01T10:51:46+00:00"),
			d.manifestVersion(release, "2023-06-12T13:25:51+00:00"),
			d.manifestVersion(legacy, "2017-09-18T08:39:46+00:00"),
			{
				ID:          FakeMissingVersion,
				Type:        version.OldBeta,
				URL:         baseURL + "/v1/packages/" + FakeMissingVersion + ".json",
				Time:        "2019-03-06T12:01:19+00:00",
				ReleaseTime: "2011-07-07T22:00:00+00:00",
			},
		},
	}
	d.serveJSON(ManifestPath, manifest)

	d.runtimes()
	return d.files
}

func (d *distribution) descriptor() *version.Descriptor {
	natives := d.nativesJar()
	classifiers := map[string]version.Artifact{}
	for _, c := range []string{"natives-linux", "natives-osx", "natives-windows-32", "natives-windows-64"} {
		classifiers[c] = d.serve("/org/lwjgl/lwjgl-platform/2.9.4/lwjgl-platform-2.9.4-"+c+".jar", natives)
	}

	return &version.Descriptor{
		ID:         FakeVersion,
		Type:       version.Release,
		Assets:     FakeAssetIndexID,
		AssetIndex: d.assetIndex(FakeAssetIndexID),
		Downloads: map[version.ArtifactKind]version.Artifact{
			version.Client: d.serve("/v1/objects/client.jar", []byte("client "+FakeVersion)),
			version.Server: d.serve("/v1/objects/server.jar", []byte("server "+FakeVersion)),
		},
		JavaVersion: version.JavaVersion{Component: FakeComponent, MajorVersion: 17},
		MainClass:   FakeMainClass,
		Arguments: &version.Arguments{
			Game: append(plain("--username", "${auth_player_name}",
				"--version", "${version_name}",
				"--gameDir", "${game_directory}",
				"--assetsDir", "${assets_root}",
				"--assetIndex", "${assets_index_name}",
				"--uuid", "${auth_uuid}",
				"--accessToken", "${auth_access_token}",
				"--userType", "${user_type}",
				"--versionType", "${version_type}",
				"${unknown_placeholder}",
			), version.Argument{Conditional: &version.ConditionalArgument{
				Rules: []version.Rule{{Action: version.Allow}},
				Value: version.Value{"--demo"},
			}}),
			JVM: append([]version.Argument{
				{Conditional: &version.ConditionalArgument{
					Rules: []version.Rule{{Action: version.Allow, OS: &version.OSRule{Name: "osx"}}},
					Value: version.Value{"-XstartOnFirstThread"},
				}},
				{Conditional: &version.ConditionalArgument{
					Rules: []version.Rule{{Action: version.Allow, OS: &version.OSRule{Name: "windows"}}},
					Value: version.Value{"-XX:HeapDumpPath=MojangTricksIntelDriversForPerformance_javaw.exe_minecraft.exe.heapdump"},
				}},
			}, plain("-Dminecraft.launcher.brand=${launcher_name}", "-Dminecraft.launcher.version=${launcher_version}")...),
		},
		Libraries: []version.Library{
			d.library("com.mojang:logging:1.1.1", "/"+FakeLibraryPaths[0]),
			{
				Name: "ca.weblite:java-objc-bridge:1.1",
				Downloads: version.LibraryDownloads{Artifact: d.artifact(
					"/ca/weblite/java-objc-bridge/1.1/java-objc-bridge-1.1.jar", []byte("objc"))},
				Rules: []version.Rule{{Action: version.Allow, OS: &version.OSRule{Name: "osx"}}},
			},
			d.library("org.lwjgl:lwjgl:3.3.1", "/"+FakeLibraryPaths[1]),
			{
				Name:      "org.lwjgl.lwjgl:lwjgl-platform:2.9.4",
				Downloads: version.LibraryDownloads{Classifiers: classifiers},
				Natives:   map[string]string{"linux": "natives-linux", "osx": "natives-osx", "windows": "natives-windows-${arch}"},
				Extract:   &version.Extract{Exclude: []string{"META-INF/"}},
			},
			d.library("org.lwjgl:lwjgl-glfw:3.3.1", "/"+FakeLibraryPaths[2]),
		},
		Logging: &version.Logging{Client: &version.LoggingConfig{
			Argument: "-Dlog4j.configurationFile=${path}",
			File:     d.loggingFile(),
			Type:     "log4j2-xml",
		}},
	}
}

func plain(values ...string) []version.Argument {
	result := make([]version.Argument, 0, len(values))
	for _, v := range values {
		result = append(result, version.Argument{Plain: v})
	}
	return result
}

func (d *distribution) library(name, path string) version.Library {
	return version.Library{Name: name, Downloads: version.LibraryDownloads{Artifact: d.artifact(path, []byte(name))}}
}

func (d *distribution) artifact(path string, body []byte) *version.Artifact {
	a := d.serve(path, body)
	return &a
}

func (d *distribution) loggingFile() version.LoggingFile {
	a := d.serve("/v1/objects/"+FakeLoggingFile, []byte(`<Configuration status="WARN"/>`))
	return version.LoggingFile{ID: FakeLoggingFile, SHA1: a.SHA1, Size: a.Size, URL: a.URL}
}

func (d *distribution) assetIndex(id string) version.AssetIndexRef {
	index := version.AssetIndex{Objects: map[string]version.AssetObject{}}
	var totalSize int64
	for name, content := range FakeAssetObjects {
		sum := sha1Hex([]byte(content))
		index.Objects[name] = version.AssetObject{Hash: sum, Size: int64(len(content))}
		d.files[AssetsPath+"/"+sum[:2]+"/"+sum] = []byte(content)
		totalSize += int64(len(content))
	}
	a := d.serveJSON("/v1/packages/"+id+".json", index)
	return version.AssetIndexRef{ID: id, SHA1: a.SHA1, Size: a.Size, TotalSize: totalSize, URL: a.URL}
}

func (d *distribution) manifestVersion(v *version.Descriptor, releaseTime string) version.ManifestVersion {
	a := d.serveJSON("/v1/packages/"+v.ID+".json", v)
	return version.ManifestVersion{
		ID:          v.ID,
		Type:        v.Type,
		URL:         a.URL,
		Time:        "2023-07-20T11:47:16+00:00",
		ReleaseTime: releaseTime,
		SHA1:        a.SHA1,
	}
}

func (d *distribution) runtimes() {
	m := version.RuntimeManifest{Files: map[string]version.RuntimeFile{
		"bin":                     {Type: version.Directory},
		"legal":                   {Type: version.Directory},
		"legal/java.base":         {Type: version.Directory},
		"legal/java.base/LICENSE": {Type: version.Link, Target: "../../release"},
	}}
	for name, content := range FakeRuntimeFiles {
		raw := d.serve("/v1/objects/runtime/"+name, []byte(content))
		compressed := d.serve("/v1/objects/runtime/"+name+".lzma", requireLZMA(d.t, []byte(content)))
		m.Files[name] = version.RuntimeFile{
			Type:       version.File,
			Executable: name == "bin/java",
			Downloads:  &version.RuntimeDownloads{Raw: raw, LZMA: &compressed},
		}
	}
	ref := d.serveJSON("/v1/packages/runtime-gamma.json", m)

	table := version.RuntimeTable{FakeComponent: []version.RuntimeEntry{{
		Availability: version.RuntimeAvailability{Group: 1, Progress: 100},
		Manifest:     version.RuntimeManifestRef{SHA1: ref.SHA1, Size: ref.Size, URL: ref.URL},
		Version:      version.RuntimeVersion{Name: "17.0.8", Released: "2023-08-03T13:27:44+00:00"},
	}}}
	d.serveJSON(RuntimesPath, version.RuntimeIndex{
		Linux:        table,
		LinuxI386:    version.RuntimeTable{},
		MacOS:        table,
		MacOSArm64:   table,
		WindowsArm64: table,
		WindowsX64:   table,
		WindowsX86:   table,
	})
}

// nativesJar is a jar with a manifest and FakeNativeFile at its root.
func (d *distribution) nativesJar() []byte {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"META-INF/MANIFEST.MF": "Manifest-Version: 1.0\n",
		FakeNativeFile:         "ELF",
	} {
		w, err := zw.Create(name)
		require.NoError(d.t, err)
		_, err = w.Write([]byte(content))
		require.NoError(d.t, err)
	}
	require.NoError(d.t, zw.Close())
	return buf.Bytes()
}

func (d *distribution) serve(path string, body []byte) version.Artifact {
	d.files[path] = body
	return version.Artifact{SHA1: sha1Hex(body), Size: int64(len(body)), URL: d.baseURL + path}
}

func (d *distribution) serveJSON(path string, v interface{}) version.Artifact {
	b, err := json.Marshal(v)
	require.NoError(d.t, err)
	return d.serve(path, b)
}

func requireLZMA(t *testing.T, data []byte) []byte {
	var buf bytes.Buffer
	w, err := lzma.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func sha1Hex(b []byte) string {
	h := sha1.Sum(b) //nolint:gosec
	return hex.EncodeToString(h[:])
}
