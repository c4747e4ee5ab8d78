// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

// Package platform identifies the host operating system family and CPU architecture. Every rule evaluated while
// resolving an installation is evaluated against a Platform.
package platform

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
)

// ErrUnsupportedPlatform is returned for an operating system or architecture that cannot be mapped.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// OS is an operating system family. The zero value is invalid.
type OS int

const (
	Windows OS = iota + 1
	Linux
	MacOS
)

// Arch is a CPU architecture. The zero value is invalid.
type Arch int

const (
	X86 Arch = iota + 1
	X86_64
	Arm
	Aarch64
)

// Platform is immutable once detected.
type Platform struct {
	OS   OS
	Arch Arch
}

// kernelArch is a variable for tests
var kernelArch = host.KernelArch

// Detect returns the current Platform. The architecture is that of the kernel, not the binary, so a 32-bit build
// running on a 64-bit host still resolves 64-bit artifacts.
func Detect() (Platform, error) {
	os, err := parseOS(runtime.GOOS)
	if err != nil {
		return Platform{}, err
	}
	archName, err := kernelArch()
	if err != nil || archName == "" {
		archName = runtime.GOARCH
	}
	arch, err := parseArch(archName)
	if err != nil {
		if arch, err = parseArch(runtime.GOARCH); err != nil {
			return Platform{}, err
		}
	}
	return Platform{OS: os, Arch: arch}, nil
}

// Parse reads a Platform in "os/arch" format, e.g. "linux/amd64" or "windows/386".
func Parse(s string) (Platform, error) {
	i := strings.IndexByte(s, '/')
	if i == -1 {
		return Platform{}, fmt.Errorf("%w: %q is not in os/arch format", ErrUnsupportedPlatform, s)
	}
	os, err := parseOS(s[:i])
	if err != nil {
		return Platform{}, err
	}
	arch, err := parseArch(s[i+1:])
	if err != nil {
		return Platform{}, err
	}
	return Platform{OS: os, Arch: arch}, nil
}

func parseOS(s string) (OS, error) {
	switch strings.ToLower(s) {
	case "windows":
		return Windows, nil
	case "linux":
		return Linux, nil
	case "darwin", "osx", "macos":
		return MacOS, nil
	}
	return 0, fmt.Errorf("%w: operating system %q", ErrUnsupportedPlatform, s)
}

func parseArch(s string) (Arch, error) {
	switch s = strings.ToLower(s); s {
	case "386", "x86", "i386", "i486", "i586", "i686":
		return X86, nil
	case "amd64", "x86_64", "x64":
		return X86_64, nil
	case "arm64", "aarch64":
		return Aarch64, nil
	}
	if strings.HasPrefix(s, "arm") {
		return Arm, nil
	}
	return 0, fmt.Errorf("%w: architecture %q", ErrUnsupportedPlatform, s)
}

// String returns the Platform in "os/arch" format accepted by Parse.
func (p Platform) String() string {
	return p.OS.String() + "/" + p.Arch.String()
}

// NativeID is the operating system name used by library rules and native classifier selectors.
func (p Platform) NativeID() string {
	switch p.OS {
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	case MacOS:
		return "osx"
	}
	return ""
}

// ArchBits is substituted for "${arch}" in native classifier templates. Only X86 and X86_64 have a value.
func (p Platform) ArchBits() (string, bool) {
	switch p.Arch {
	case X86:
		return "32", true
	case X86_64:
		return "64", true
	}
	return "", false
}

// ClasspathSeparator joins classpath entries.
func (p Platform) ClasspathSeparator() string {
	if p.OS == Windows {
		return ";"
	}
	return ":"
}

// JavaExecutable is the slash-delimited path of "java" relative to the root of a runtime.
func (p Platform) JavaExecutable() string {
	switch p.OS {
	case Windows:
		return "bin/java.exe"
	case MacOS:
		return "jre.bundle/Contents/Home/bin/java"
	}
	return "bin/java"
}

func (o OS) String() string {
	switch o {
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	case MacOS:
		return "darwin"
	}
	return "unknown"
}

func (a Arch) String() string {
	switch a {
	case X86:
		return "386"
	case X86_64:
		return "amd64"
	case Arm:
		return "arm"
	case Aarch64:
		return "arm64"
	}
	return "unknown"
}
