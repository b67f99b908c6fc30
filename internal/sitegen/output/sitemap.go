package output

import (
	"encoding/xml"
	"fmt"
)

// SitemapEntry represents a single URL in the sitemap.
type SitemapEntry struct {
	Loc        string
	Lastmod    string
	Priority   string
	ChangeFreq string
}

// SitemapFile is a filename + content pair.
type SitemapFile struct {
	Filename string
	Content  string
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	Lastmod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapIndex struct {
	XMLName  xml.Name       `xml:"sitemapindex"`
	XMLNS    string         `xml:"xmlns,attr"`
	Sitemaps []sitemapChild `xml:"sitemap"`
}

type sitemapChild struct {
	Loc     string `xml:"loc"`
	Lastmod string `xml:"lastmod,omitempty"`
}

// NewSitemapEntry creates an entry for a logical path. The root page
// ("/index.html") maps to the bare origin.
func NewSitemapEntry(origin, path, lastmod, priority, changefreq string) SitemapEntry {
	loc := origin + path
	if path == "/index.html" || path == "/" {
		loc = origin + "/"
	}
	return SitemapEntry{
		Loc:        loc,
		Lastmod:    lastmod,
		Priority:   priority,
		ChangeFreq: changefreq,
	}
}

// GenerateSitemapFiles renders sitemap XML, splitting into an index plus
// child files when entries exceed maxPerFile.
func GenerateSitemapFiles(entries []SitemapEntry, origin string, maxPerFile int) []SitemapFile {
	if maxPerFile <= 0 {
		maxPerFile = 50000
	}

	if len(entries) <= maxPerFile {
		return []SitemapFile{{Filename: "sitemap.xml", Content: renderURLSet(entries)}}
	}

	var files []SitemapFile
	var children []sitemapChild
	lastmod := ""
	if len(entries) > 0 {
		lastmod = entries[0].Lastmod
	}

	for i := 0; i < len(entries); i += maxPerFile {
		end := i + maxPerFile
		if end > len(entries) {
			end = len(entries)
		}
		filename := fmt.Sprintf("sitemap-%d.xml", len(files)+1)
		files = append(files, SitemapFile{Filename: filename, Content: renderURLSet(entries[i:end])})
		children = append(children, sitemapChild{
			Loc:     fmt.Sprintf("%s/%s", origin, filename),
			Lastmod: lastmod,
		})
	}

	index := sitemapIndex{
		XMLNS:    "http://www.sitemaps.org/schemas/sitemap/0.9",
		Sitemaps: children,
	}
	data, err := xml.MarshalIndent(index, "", "  ")
	if err != nil {
		return files
	}
	return append([]SitemapFile{{Filename: "sitemap.xml", Content: xml.Header + string(data)}}, files...)
}

func renderURLSet(entries []SitemapEntry) string {
	us := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, e := range entries {
		us.URLs = append(us.URLs, urlEntry{
			Loc:        e.Loc,
			Lastmod:    e.Lastmod,
			ChangeFreq: e.ChangeFreq,
			Priority:   e.Priority,
		})
	}
	data, err := xml.MarshalIndent(us, "", "  ")
	if err != nil {
		return ""
	}
	return xml.Header + string(data)
}
