// Package manifest provides loading and version rewriting for package.json.
//
// The raw file bytes are the authoritative representation: the parsed view is
// read-only and the version field is only ever mutated through a scoped text
// substitution on the raw bytes. Re-serializing the parsed structure would
// silently reformat the file (key order, indentation, whitespace), which this
// tool must never do.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/ajxudir/npub/pkg/errors"
	"github.com/ajxudir/npub/pkg/verbose"
	"github.com/iancoleman/orderedmap"
)

// FileName is the manifest file name looked up in the working directory.
const FileName = "package.json"

// Manifest represents a loaded package.json.
//
// Fields:
//   - Path: Absolute or relative path the manifest was read from
//   - Raw: The authoritative raw file bytes
//   - Name: The package name from the parsed view
//   - Version: The declared version from the parsed view
//   - Scripts: Script name to command-string mapping from the parsed view
type Manifest struct {
	// Path is where the manifest was read from and where rewrites are written.
	Path string

	// Raw is the verbatim file content. All mutation happens here.
	Raw []byte

	// Name is the package name.
	Name string

	// Version is the declared package version.
	Version string

	// Scripts maps script names to their command strings.
	Scripts map[string]string
}

// Load reads and parses package.json from the given directory.
//
// It performs the following operations:
//   - Reads the raw bytes from <dir>/package.json
//   - Parses them into an order-preserving map to extract name, version, and scripts
//   - Retains the raw bytes verbatim for later text-level rewriting
//
// Parameters:
//   - dir: Directory containing the manifest (typically the current directory)
//
// Returns:
//   - *Manifest: The loaded manifest
//   - error: ManifestNotFoundError when the file is absent,
//     ManifestInvalidError when it cannot be parsed as a key-value structure
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewManifestNotFoundError(path, err)
		}
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	data := orderedmap.New()
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, errors.NewManifestInvalidError(path, err)
	}

	m := &Manifest{
		Path:    path,
		Raw:     raw,
		Name:    stringField(data, "name"),
		Version: stringField(data, "version"),
		Scripts: scriptsField(data),
	}

	verbose.Debugf("loaded manifest %s (name=%s version=%s scripts=%d)", path, m.Name, m.Version, len(m.Scripts))
	return m, nil
}

// Script returns the command string for the named script.
//
// Parameters:
//   - name: Script name to look up
//
// Returns:
//   - string: The script's command string, empty if not declared
//   - bool: true if the script is declared
func (m *Manifest) Script(name string) (string, bool) {
	cmd, ok := m.Scripts[name]
	return cmd, ok
}

// Write persists new raw manifest text to the manifest's path.
//
// Parameters:
//   - raw: The full new file content
//
// Returns:
//   - error: Any filesystem error from writing the file
func (m *Manifest) Write(raw []byte) error {
	return os.WriteFile(m.Path, raw, 0o644)
}

// RewriteVersion substitutes the manifest's version value in the raw text.
//
// It builds a pattern matching a version key (single or double quoted)
// followed by a colon and the old version quoted the same way, tolerant of
// whitespace and newlines between key, colon, and value. Only the first
// match is rewritten, so a nested object carrying an identical version
// key/value pair is left alone. Only the value between the quotes is
// replaced; quote style and all surrounding text are untouched. The old
// version is escaped for literal matching.
//
// Parameters:
//   - raw: The original manifest bytes
//   - oldVersion: The exact version string currently in the manifest
//   - newVersion: The version string to substitute in
//
// Returns:
//   - []byte: New manifest bytes with the version replaced
//   - error: ManifestRewriteError when the substitution matched nothing
func RewriteVersion(raw []byte, oldVersion, newVersion string) ([]byte, error) {
	old := regexp.QuoteMeta(oldVersion)
	patterns := []*regexp.Regexp{
		regexp.MustCompile(`("version"\s*:\s*")` + old + `(")`),
		regexp.MustCompile(`('version'\s*:\s*')` + old + `(')`),
	}

	for _, re := range patterns {
		loc := re.FindSubmatchIndex(raw)
		if loc == nil {
			continue
		}
		// loc[3] ends the opening group, loc[4] starts the closing quote.
		out := make([]byte, 0, len(raw)+len(newVersion))
		out = append(out, raw[:loc[3]]...)
		out = append(out, newVersion...)
		out = append(out, raw[loc[4]:]...)
		return out, nil
	}

	return nil, errors.NewManifestRewriteError(oldVersion)
}

// stringField extracts a top-level string field from the parsed manifest.
//
// Parameters:
//   - data: The parsed order-preserving map
//   - key: Top-level key to read
//
// Returns:
//   - string: The field value, empty if absent or not a string
func stringField(data *orderedmap.OrderedMap, key string) string {
	raw, ok := data.Get(key)
	if !ok {
		return ""
	}
	s, _ := raw.(string)
	return s
}

// scriptsField extracts the scripts mapping from the parsed manifest.
//
// The JSON decoder yields nested objects as ordered maps; plain maps are
// handled too for robustness. Non-string script values are skipped.
//
// Parameters:
//   - data: The parsed order-preserving map
//
// Returns:
//   - map[string]string: Script name to command-string mapping, may be empty
func scriptsField(data *orderedmap.OrderedMap) map[string]string {
	scripts := map[string]string{}
	raw, ok := data.Get("scripts")
	if !ok {
		return scripts
	}

	switch v := raw.(type) {
	case orderedmap.OrderedMap:
		for _, key := range v.Keys() {
			if val, ok := v.Get(key); ok {
				if s, ok := val.(string); ok {
					scripts[key] = s
				}
			}
		}
	case map[string]interface{}:
		for key, val := range v {
			if s, ok := val.(string); ok {
				scripts[key] = s
			}
		}
	}

	return scripts
}
