package output

import (
	"fmt"
	"strings"
)

// GenerateRobotsTxt renders robots.txt: crawling allowed everywhere except
// the configured disallow prefixes, plus the sitemap reference.
func GenerateRobotsTxt(origin string, disallow []string) string {
	var lines []string

	lines = append(lines, "User-agent: *", "Allow: /")
	for _, prefix := range disallow {
		lines = append(lines, fmt.Sprintf("Disallow: %s", prefix))
	}
	lines = append(lines, "", fmt.Sprintf("Sitemap: %s/sitemap.xml", origin))

	return strings.Join(lines, "\n") + "\n"
}
