package export

import (
	"io"
	"os"

	"github.com/Open-S2/earclip"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Print renders the mesh and prints it inline to an iTerm compatible terminal.
func Print(w io.Writer, mesh *earclip.Mesh, scale float64) error {
	f, err := os.CreateTemp("", "earclip-*.png")
	if err != nil {
		return errors.Wrap(err, "creating preview file")
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	if err := SavePNG(path, mesh, scale); err != nil {
		return err
	}
	imgcat.CatFile(path, w)
	return nil
}
