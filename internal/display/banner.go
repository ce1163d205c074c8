package display

import (
	"fmt"
	"io"

	"github.com/backmassage/picnamer/internal/term"
)

const banner = `       _
 _ __ (_) ___ _ __   __ _ _ __ ___   ___ _ __
| '_ \| |/ __| '_ \ / _` + "`" + ` | '_ ` + "`" + ` _ \ / _ \ '__|
| |_) | | (__| | | | (_| | | | | | |  __/ |
| .__/|_|\___|_| |_|\__,_|_| |_| |_|\___|_|
|_|
`

// PrintBanner writes the ASCII art banner to w, in magenta when colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Paint(term.Magenta, banner))
}
