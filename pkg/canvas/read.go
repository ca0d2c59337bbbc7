package canvas

import (
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/matzehuels/canvas2svg/pkg/errors"
)

// ReadJSON decodes a canvas document from r.
//
// The input must be a JSON object with "nodes" and "edges" arrays:
//
//	{
//	  "nodes": [{"id": "a", "type": "text", "x": 0, "y": 0, "width": 100, "height": 50, "text": "Hi"}],
//	  "edges": [{"fromNode": "a", "toNode": "a", "fromSide": "right", "toSide": "left"}]
//	}
//
// Unknown fields are ignored, so canvas files written by other tools
// (file/link nodes, edge labels, end styles) decode cleanly.
//
// ReadJSON returns an INVALID_INPUT error if the JSON is malformed or if
// [Document.Validate] rejects the geometry. Referential integrity of edges
// is not checked here; it is enforced when the scene is built. ReadJSON
// does not close r.
func ReadJSON(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode canvas")
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// ImportJSON reads the canvas file at path.
//
// A missing file yields a FILE_NOT_FOUND error; other open failures and
// decode failures are reported as in [ReadJSON], with the path attached.
func ImportJSON(path string) (Document, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Document{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "canvas file %s does not exist", path)
	}
	if err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	doc, err := ReadJSON(f)
	if err != nil {
		return Document{}, errors.Wrap(errors.GetCode(err), err, "read %s", path)
	}
	return doc, nil
}

// Validate checks the node geometry: coordinates and extents must be finite
// and extents non-negative.
func (d Document) Validate() error {
	for i, n := range d.Nodes {
		for _, v := range []float64{n.X, n.Y, n.Width, n.Height} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return errors.New(errors.ErrCodeInvalidInput, "node %q (nodes[%d]): non-finite geometry", n.ID, i)
			}
		}
		if n.Width < 0 || n.Height < 0 {
			return errors.New(errors.ErrCodeInvalidInput,
				"node %q (nodes[%d]): negative size %gx%g", n.ID, i, n.Width, n.Height)
		}
	}
	return nil
}
