package version

import (
	"bytes"
	"os/exec"
	"regexp"
)

// figletVersionRegex matches "Version: 2.2.5" in `figlet -v` output.
var figletVersionRegex = regexp.MustCompile(`Version:\s*(\d+\.\d+(?:\.\d+)?)`)

// FigletInfo describes the figlet binary used for headers and footers.
type FigletInfo struct {
	// Version is the figlet version, empty if it could not be read.
	Version string `json:"version,omitempty"`

	// Path is the resolved path to the binary.
	Path string `json:"path,omitempty"`

	// Found indicates if the binary was found.
	Found bool `json:"found"`

	// Message provides additional information when something is off.
	Message string `json:"message,omitempty"`
}

// DetectFiglet finds the figlet binary and reads its version.
// name may be a bare command looked up in PATH or an explicit path.
func DetectFiglet(name string) FigletInfo {
	if name == "" {
		name = "figlet"
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return FigletInfo{
			Found:   false,
			Message: name + " not found in PATH; headers fall back to blank lines",
		}
	}

	version, err := getFigletVersion(path)
	if err != nil {
		return FigletInfo{
			Path:    path,
			Found:   true,
			Message: "failed to get figlet version: " + err.Error(),
		}
	}

	return FigletInfo{
		Version: version,
		Path:    path,
		Found:   true,
	}
}

// getFigletVersion executes `figlet -v` and extracts the version string.
func getFigletVersion(figletPath string) (string, error) {
	cmd := exec.Command(figletPath, "-v")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", err
	}

	return extractVersion(out.String())
}

// extractVersion extracts the version number from figlet's banner.
func extractVersion(output string) (string, error) {
	m := figletVersionRegex.FindStringSubmatch(output)
	if m == nil {
		return "", &versionParseError{output: output}
	}
	return m[1], nil
}

// versionParseError indicates failure to parse figlet version output.
type versionParseError struct {
	output string
}

func (e *versionParseError) Error() string {
	return "failed to parse figlet version from output: " + e.output
}

// String returns a human-readable figlet info string.
func (f FigletInfo) String() string {
	if !f.Found {
		return "  Binary Version: not found\n  Binary Path:    -"
	}

	v := f.Version
	if v == "" {
		v = "unknown (" + f.Message + ")"
	}

	return "  Binary Version: " + v + "\n  Binary Path:    " + f.Path
}
