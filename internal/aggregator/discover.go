package aggregator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/lecture-flow/internal/layout"
)

func (a *implAggregator) Discover(ctx context.Context) (Groups, error) {
	entries, err := os.ReadDir(a.layout.Root())
	if err != nil {
		return Groups{}, fmt.Errorf("read output dir: %w", err)
	}

	var groups Groups
	lectures := make(map[string]bool)

	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		name := e.Name()

		m, err := layout.ReadManifest(a.layout.GroupDir(name))
		switch {
		case err == nil:
			switch m.Kind {
			case layout.KindPDF:
				if doc, ok := strings.CutPrefix(name, layout.PDFPrefix); ok {
					groups.Documents = append(groups.Documents, doc)
				}
			case layout.KindImage:
				if m.Lecture != "" {
					lectures[m.Lecture] = true
				}
			}
		case errors.Is(err, fs.ErrNotExist):
			if doc, ok := strings.CutPrefix(name, layout.PDFPrefix); ok {
				groups.Documents = append(groups.Documents, doc)
				continue
			}
			if lecture, _, ok := layout.ParseLecturePage(name); ok {
				lectures[lecture] = true
			}
		default:
			a.logger.Warn(ctx, "Skipping %s: %v", name, err)
		}
	}

	for l := range lectures {
		groups.Lectures = append(groups.Lectures, l)
	}
	sort.Strings(groups.Documents)
	sort.Strings(groups.Lectures)
	return groups, nil
}
