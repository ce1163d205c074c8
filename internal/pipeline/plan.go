package pipeline

import (
	"github.com/backmassage/picnamer/internal/config"
	"github.com/backmassage/picnamer/internal/naming"
)

// Move is one planned rename.
type Move struct {
	Photo  Photo
	Name   string // Name from the list, without extension.
	Target string // Final path inside the output folder.
}

// Plan pairs photos[i] with names[i]. It fails without side effects when the
// counts differ, when both lists are empty, or when any name cannot be used
// as a file name. Repeated names get "_N" suffixes instead of overwriting.
func Plan(cfg *config.Config, photos []Photo, names []string) ([]Move, error) {
	if len(photos) != len(names) {
		return nil, &CountMismatchError{
			Names:       len(names),
			Photos:      len(photos),
			NamesFile:   cfg.NamesFile,
			PhotoFolder: cfg.PhotoFolder,
		}
	}
	if len(photos) == 0 {
		return nil, ErrNothingToRename
	}

	resolver := naming.NewCollisionResolver()
	moves := make([]Move, len(photos))
	for i, p := range photos {
		target, err := naming.TargetPath(cfg.OutputFolder, names[i], p.Ext)
		if err != nil {
			return nil, err
		}
		moves[i] = Move{
			Photo:  p,
			Name:   names[i],
			Target: resolver.Resolve(target),
		}
	}
	return moves, nil
}
