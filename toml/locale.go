// Package toml provides a TOML file based implementation of
// optcg.LocaleSource. Each locale lives in its own `<code>.toml` file
// holding the vendor hostname and the four terminology tables.
package toml

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fwojciec/optcg"
)

// Ensure LocaleSource implements optcg.LocaleSource at compile time.
var _ optcg.LocaleSource = (*LocaleSource)(nil)

// LocaleSource loads locale tables from a directory of TOML files.
type LocaleSource struct {
	dir string
}

// NewLocaleSource creates a LocaleSource reading from dir.
func NewLocaleSource(dir string) *LocaleSource {
	return &LocaleSource{dir: dir}
}

// Load reads and validates the locale for a language code.
// A missing file is ENOTFOUND; a table missing required canonical keys
// is EINVALID. Validation happens here, at load time, so extraction
// never discovers an incomplete table mid-parse.
func (s *LocaleSource) Load(lang string) (*optcg.Locale, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("%s.toml", lang))

	var locale optcg.Locale
	if _, err := toml.DecodeFile(path, &locale); err != nil {
		if os.IsNotExist(err) {
			return nil, optcg.Errorf(optcg.ENOTFOUND, "locale file not found: %s", path)
		}
		return nil, optcg.Errorf(optcg.EINVALID, "failed to decode locale %s: %v", path, err)
	}

	if err := locale.Validate(); err != nil {
		return nil, optcg.Errorf(optcg.ErrorCode(err), "locale %s: %s", lang, optcg.ErrorMessage(err))
	}
	return &locale, nil
}

// List returns the language codes available in the directory, sorted.
func (s *LocaleSource) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, optcg.Errorf(optcg.ENOTFOUND, "locale directory not found: %s", s.dir)
		}
		return nil, err
	}

	var langs []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		langs = append(langs, strings.TrimSuffix(entry.Name(), ".toml"))
	}
	sort.Strings(langs)
	return langs, nil
}
