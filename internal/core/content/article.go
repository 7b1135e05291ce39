// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package content

import (
	"time"

	"github.com/microcosm-cc/bluemonday"
)

// # Article Helpers
//
// Tutorials and blog posts are editor-written articles: HTML bodies, a
// publication flag and a publication timestamp.

// bodyPolicy admits the markup a rich text editor produces and strips
// scripts, event handlers and unsafe URLs. Policies are safe for concurrent use.
var bodyPolicy = bluemonday.UGCPolicy()

// SanitizeHTML cleans an article body before it is stored.
func SanitizeHTML(body string) string {
	return bodyPolicy.Sanitize(body)
}

// StampPublished sets publishedAt to now when a published article has none.
func StampPublished(published bool, publishedAt **time.Time, now time.Time) {
	if published && *publishedAt == nil {
		stamped := now
		*publishedAt = &stamped
	}
}
