package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// pdftoppm zero-pads the page number to the width of the page count.
var reRenderedPage = regexp.MustCompile(`^page-(\d+)\.png$`)

func (d *implDocument) Rasterize(ctx context.Context, pdfPath, destDir string) ([]string, error) {
	if !fileExists(pdfPath) {
		return nil, fmt.Errorf("pdf not found: %s", pdfPath)
	}
	absPDF, err := filepath.Abs(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("resolve pdf path: %w", err)
	}

	if err := os.MkdirAll(d.tempDir, 0755); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	workDir, err := os.MkdirTemp(d.tempDir, "raster-*")
	if err != nil {
		return nil, fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	d.logger.Info(ctx, "Rendering pages at %d dpi: %s", d.dpi, pdfPath)

	args := []string{"-png", "-r", strconv.Itoa(d.dpi), absPDF, "page"}
	if _, err := d.executor.ExecuteInDir(ctx, workDir, d.rasterizer, args...); err != nil {
		return nil, fmt.Errorf("rasterize pdf: %w", err)
	}

	rendered, err := collectPages(workDir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("create images dir: %w", err)
	}

	paths := make([]string, 0, len(rendered))
	for _, p := range rendered {
		dest := filepath.Join(destDir, fmt.Sprintf("page_%d.png", p.num))
		if err := moveFile(p.path, dest); err != nil {
			return nil, fmt.Errorf("store page %d: %w", p.num, err)
		}
		paths = append(paths, dest)
	}
	return paths, nil
}

type renderedPage struct {
	num  int
	path string
}

func collectPages(dir string) ([]renderedPage, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read rendered pages: %w", err)
	}

	var pages []renderedPage
	for _, e := range entries {
		m := reRenderedPage.FindStringSubmatch(e.Name())
		if m == nil || e.IsDir() {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		pages = append(pages, renderedPage{num: n, path: filepath.Join(dir, e.Name())})
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].num < pages[j].num })
	return pages, nil
}

// moveFile renames, falling back to copy across filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return os.Remove(src)
}
