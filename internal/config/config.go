// Package config loads editordemo's TOML configuration file into a
// core.Mode, with defaults applied for anything the file omits.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	core "github.com/embedx/lineeditor/core"
)

// File is the on-disk shape of editordemo's config file. The pointer
// field TabInsertsSpaces distinguishes "absent from file" from
// "explicitly false" so Load can layer the file over core.DefaultMode()
// correctly; a zero or negative Spaces/ViewportRows is treated as absent.
type File struct {
	Spaces           int   `toml:"spaces"`
	ViewportRows     int   `toml:"viewport_rows"`
	TabInsertsSpaces *bool `toml:"tab_inserts_spaces"`
}

// Load reads path as TOML and merges it over core.DefaultMode(). A
// missing path is not an error — the defaults are returned unchanged.
func Load(path string) (core.Mode, error) {
	mode := core.DefaultMode()
	if path == "" {
		return mode, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return mode, nil
	}

	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return core.Mode{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if f.Spaces > 0 {
		mode.Spaces = f.Spaces
	}
	if f.ViewportRows > 0 {
		mode.ViewportRows = f.ViewportRows
	}
	if f.TabInsertsSpaces != nil {
		mode.TabInsertsSpaces = *f.TabInsertsSpaces
	}
	return mode, nil
}
