// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// AttacksFile is looked up in the asset directory to reskin attack modes.
const AttacksFile = "attacks.json"

type attackOverride struct {
	Mode   AttackMode `json:"mode"`
	Label  string     `json:"label"`
	Sprite string     `json:"sprite"`
	Glyph  string     `json:"glyph"`
}

// LoadAttackDefinitions applies label, sprite and glyph overrides from a JSON
// array to Attacks. A missing file is not an error. Modes, cues and motions
// cannot be changed this way.
func LoadAttackDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read attack definitions file: %w", err)
	}

	var overrides []attackOverride
	if err := json.Unmarshal(file, &overrides); err != nil {
		return fmt.Errorf("failed to unmarshal attack definitions: %w", err)
	}

	// validate everything before touching Attacks
	for _, o := range overrides {
		if !Valid(o.Mode) {
			return fmt.Errorf("attack definitions: unknown mode %q", o.Mode)
		}
		if o.Glyph != "" && utf8.RuneCountInString(o.Glyph) != 1 {
			return fmt.Errorf("attack definitions: glyph for %q must be one character", o.Mode)
		}
	}
	for _, o := range overrides {
		for i := range Attacks {
			if Attacks[i].Mode != o.Mode {
				continue
			}
			if o.Label != "" {
				Attacks[i].Label = o.Label
			}
			if o.Sprite != "" {
				Attacks[i].Sprite = o.Sprite
			}
			if o.Glyph != "" {
				Attacks[i].Glyph, _ = utf8.DecodeRuneInString(o.Glyph)
			}
		}
	}

	log.Info().Int("overrides", len(overrides)).Str("path", path).Msg("loaded attack definitions")
	return nil
}
