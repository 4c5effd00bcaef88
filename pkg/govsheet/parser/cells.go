package parser

import (
	"regexp"
	"strings"
)

// artifactDelims matches any run of the artifact cell delimiters; mixed
// runs like "; /" collapse into a single split point.
var artifactDelims = regexp.MustCompile(`[,\n;/]+`)

// SplitArtifactCell splits an artifact cell into a list of artifact names.
// Missing or blank cells yield no artifacts.
func SplitArtifactCell(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var names []string
	for _, part := range artifactDelims.Split(value, -1) {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

// AppendUnique appends items to target, preserving order and skipping
// items already present.
func AppendUnique(target []string, items []string) []string {
	seen := make(map[string]struct{}, len(target))
	for _, existing := range target {
		seen[existing] = struct{}{}
	}
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			target = append(target, item)
			seen[item] = struct{}{}
		}
	}
	return target
}
