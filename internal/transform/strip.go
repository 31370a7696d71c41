package transform

import "regexp"

type rewrite struct {
	pattern *regexp.Regexp
	with    string
}

// pushRewrites turn local task markers back into markdown checkboxes and drop
// the property lines added during import.
var pushRewrites = []rewrite{
	{regexp.MustCompile(`(?m)^-?\S*?TODO `), "- [ ] "},
	{regexp.MustCompile(`(?m)^-?\S*?NOW `), "- [ ] "},
	{regexp.MustCompile(`(?m)^-?\S*?DOING `), "- [ ] "},
	{regexp.MustCompile(`(?m)^-?\S*?DONE `), "- [x] "},
	{regexp.MustCompile(`\nmemo-id::.*`), ""},
	{regexp.MustCompile(`\nmemoid::.*`), ""},
	{regexp.MustCompile(`\nmemo-visibility::.*`), ""},
}

// StripSyncArtifacts prepares block content for pushing back to Memos.
func StripSyncArtifacts(content string) string {
	for _, rw := range pushRewrites {
		content = rw.pattern.ReplaceAllString(content, rw.with)
	}
	return content
}
