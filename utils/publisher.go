package utils

import (
	"coursepanel/models"
	"coursepanel/renderer"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// logPublish logs publisher events with timestamp
func logPublish(message string) {
	log.Printf("[PUBLISH %s] %s", time.Now().Format(time.RFC3339), message)
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

// PublishAll renders the whole site into outDir: the root page, every
// section page, every legal page, sitemap.xml and a dated JSON snapshot of
// the source document. Returns the relative paths that were written.
func PublishAll(doc models.ContentDocument, outDir string) ([]string, error) {
	r := renderer.New(doc)
	var files []string

	write := func(rel, content string) error {
		if err := writeFile(filepath.Join(outDir, rel), content); err != nil {
			logPublish("Error writing " + rel + ": " + err.Error())
			return err
		}
		files = append(files, rel)
		return nil
	}

	if err := write("index.html", r.MainPageHTML()); err != nil {
		return files, err
	}

	for _, page := range doc.Pages {
		if err := write(filepath.Join(page.Slug, "index.html"), r.PageHTML(page)); err != nil {
			return files, err
		}
	}

	for _, page := range doc.LegalPages {
		if err := write(filepath.Join("legal", page.Slug, "index.html"), r.LegalPageHTML(page)); err != nil {
			return files, err
		}
	}

	if err := write("sitemap.xml", r.Sitemap()); err != nil {
		return files, err
	}

	snapshot, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		logPublish("Error marshalling content snapshot: " + err.Error())
		return files, err
	}
	snapshotName := "content-" + time.Now().Format("2006-01-02") + ".json"
	if err := write(snapshotName, string(snapshot)); err != nil {
		return files, err
	}

	logPublish("Published " + strconv.Itoa(len(files)) + " files to " + outDir)
	return files, nil
}
