package aggregator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/nguyentantai21042004/lecture-flow/internal/layout"
)

// source is one block of text with its provenance label.
type source struct {
	label string
	text  string
}

// gatherDocument collects the consolidation input for pdf-<name>.
func (a *implAggregator) gatherDocument(name string) ([]source, error) {
	dir := a.layout.PDFDir(name)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: document directory %s", ErrNotFound, dir)
	}

	important := filepath.Join(dir, layout.ImportantFile)
	if layout.Exists(important) {
		data, err := os.ReadFile(important)
		if err != nil {
			return nil, fmt.Errorf("read important content: %w", err)
		}
		return []source{{label: layout.ImportantFile, text: string(data)}}, nil
	}

	pages, err := a.documentPages(dir)
	if err != nil {
		return nil, err
	}

	var sources []source
	for _, p := range pages {
		data, err := os.ReadFile(p.path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read page analysis: %w", err)
		}
		sources = append(sources, source{label: filepath.Base(p.path), text: string(data)})
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: no important content or page analyses in %s", ErrNotFound, dir)
	}
	return sources, nil
}

type pageFile struct {
	page int
	path string
}

// documentPages lists successful page analyses in page order, from the
// manifest when present and from the analysis directory otherwise.
func (a *implAggregator) documentPages(dir string) ([]pageFile, error) {
	var pages []pageFile

	m, err := layout.ReadManifest(dir)
	switch {
	case err == nil:
		for _, p := range m.Pages {
			if p.Error != "" || p.Analysis == "" {
				continue
			}
			pages = append(pages, pageFile{page: p.Page, path: filepath.Join(dir, p.Analysis)})
		}
	case errors.Is(err, fs.ErrNotExist):
		entries, err := os.ReadDir(filepath.Join(dir, layout.AnalysisDir))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read analysis dir: %w", err)
		}
		for _, e := range entries {
			n, ok := layout.ParsePageAnalysisName(e.Name())
			if !ok || e.IsDir() {
				continue
			}
			pages = append(pages, pageFile{page: n, path: filepath.Join(dir, layout.AnalysisDir, e.Name())})
		}
	default:
		return nil, err
	}

	sort.SliceStable(pages, func(i, j int) bool { return pages[i].page < pages[j].page })
	return pages, nil
}

type lectureDir struct {
	index int
	name  string
}

// lectureDirs finds every group belonging to lecture, ordered by index.
func (a *implAggregator) lectureDirs(lecture string) ([]lectureDir, error) {
	entries, err := os.ReadDir(a.layout.Root())
	if err != nil {
		return nil, fmt.Errorf("read output dir: %w", err)
	}

	var dirs []lectureDir
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name, idx, ok := a.lectureOf(e.Name())
		if !ok || name != lecture {
			continue
		}
		dirs = append(dirs, lectureDir{index: idx, name: e.Name()})
	}

	sort.SliceStable(dirs, func(i, j int) bool {
		if dirs[i].index != dirs[j].index {
			return dirs[i].index < dirs[j].index
		}
		return dirs[i].name < dirs[j].name
	})
	return dirs, nil
}

// lectureOf resolves a group directory to its lecture and index. A manifest
// is authoritative; without one the <lecture>-<n> name pattern is used.
func (a *implAggregator) lectureOf(group string) (string, int, bool) {
	m, err := layout.ReadManifest(a.layout.GroupDir(group))
	if err == nil {
		if m.Kind != layout.KindImage || m.Lecture == "" {
			return "", 0, false
		}
		return m.Lecture, m.Index, true
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", 0, false
	}
	return layout.ParseLecturePage(group)
}

// gatherLecture reads important content, or the analysis as a fallback,
// from each page group. Groups with neither, and groups whose manifest
// records a failed analysis, are skipped.
func (a *implAggregator) gatherLecture(dirs []lectureDir) ([]source, error) {
	var sources []source
	for _, d := range dirs {
		dir := a.layout.GroupDir(d.name)
		if failedSlide(dir) {
			continue
		}

		path := filepath.Join(dir, layout.ImportantFile)
		if !layout.Exists(path) {
			path = filepath.Join(dir, layout.AnalysisFile)
			if !layout.Exists(path) {
				continue
			}
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", d.name, err)
		}
		sources = append(sources, source{label: d.name, text: string(data)})
	}
	return sources, nil
}

// failedSlide reports whether the group's manifest records a failed analysis.
// Groups without a manifest are never treated as failed.
func failedSlide(dir string) bool {
	m, err := layout.ReadManifest(dir)
	if err != nil {
		return false
	}
	for _, p := range m.Pages {
		if p.Error != "" {
			return true
		}
	}
	return false
}
