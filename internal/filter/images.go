// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/paperprep/pkg/pandoc"
)

const (
	vectorExt = ".pdf"
	rasterExt = ".png"
)

// rasterizeImages converts vector images to rasters the output format can
// embed. For every image whose url ends in .pdf, the raster lives next to
// it with the extension swapped; if it does not exist yet the rasterizer
// is invoked once to produce it, and the node's url is rewritten to the
// raster. A rasterizer failure aborts the whole run.
//
// Explicit width attributes are stripped unconditionally: the target
// format cannot honor them, so images default to the full page width.
func (s *State) rasterizeImages(e, _ *pandoc.Elem) ([]*pandoc.Elem, error) {
	if e.Type != pandoc.TypeImage {
		return nil, nil
	}

	url := e.ImageURL()
	s.logger.Info("processing image", "url", url)

	if strings.HasSuffix(url, vectorExt) {
		rasterURL := strings.TrimSuffix(url, vectorExt) + rasterExt
		src := filepath.Join(s.imageDir, url)
		dst := filepath.Join(s.imageDir, rasterURL)

		if _, err := os.Stat(dst); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("checking raster %s: %w", dst, err)
			}
			s.logger.Info("rasterizing", "src", src, "dst", dst)
			if err := s.rasterizer.Rasterize(src, dst); err != nil {
				return nil, err
			}
			s.rasterized = append(s.rasterized, rasterURL)
		}
		e.SetImageURL(rasterURL)
	}

	e.DeleteAttribute("width")
	return nil, nil
}
