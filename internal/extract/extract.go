package extract

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ppiankov/docent/internal/model"
	"golang.org/x/net/html"
)

// Extract reads a local document file and returns its plain text plus any
// page images supplied alongside it. HTML files are reduced to visible
// text; everything else is treated as plain text.
func Extract(path string, imagePaths []string) (string, []model.PageImage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read document: %w", err)
	}

	text := string(raw)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err = HTMLToText(text)
		if err != nil {
			return "", nil, fmt.Errorf("parse HTML: %w", err)
		}
	}

	images, err := loadImages(imagePaths)
	if err != nil {
		return "", nil, err
	}

	return text, images, nil
}

// HTMLToText extracts visible text from an HTML document, skipping
// script, style and other non-content elements.
func HTMLToText(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return buf.String(), nil
}

// loadImages reads page-image files and base64-encodes them for the
// first external stage.
func loadImages(paths []string) ([]model.PageImage, error) {
	var images []model.PageImage
	for _, p := range paths {
		raw, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read image %s: %w", p, err)
		}
		images = append(images, model.PageImage{
			MimeType: mimeTypeFor(p),
			Data:     base64.StdEncoding.EncodeToString(raw),
		})
	}
	return images, nil
}

func mimeTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}
