package grid

import "strings"

// Cell glyphs, two characters per cell so the board prints roughly square.
const (
	glyphEmpty   = "  "
	glyphNeutral = "╳╳"
	glyphLight   = "░░"
	glyphDark    = "██"
	glyphOther   = "▒▒"
)

// String renders the board as one glyph pair per cell, one line per row.
// The first two player ids seen on the board get the light and dark glyphs;
// further players share a third glyph. Intended for debugging and test
// diagnostics, not gameplay display.
func (b *Board) String() string {
	shade := make(map[PlayerID]string, 2)
	for _, bld := range b.Buildings() {
		if bld.Occ.K != Owned {
			continue
		}
		if _, ok := shade[bld.Occ.Owner]; ok {
			continue
		}
		switch len(shade) {
		case 0:
			shade[bld.Occ.Owner] = glyphLight
		case 1:
			shade[bld.Occ.Owner] = glyphDark
		default:
			shade[bld.Occ.Owner] = glyphOther
		}
	}
	var sb strings.Builder
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			occ := b.occ[r*b.width+c]
			switch occ.K {
			case Owned:
				sb.WriteString(shade[occ.Owner])
			case Neutral:
				sb.WriteString(glyphNeutral)
			default:
				sb.WriteString(glyphEmpty)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
