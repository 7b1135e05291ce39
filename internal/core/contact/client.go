// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package contact

import (
	"strings"

	"github.com/mileusna/useragent"
)

// Client is the parsed user agent of a submitter, shown to staff for triage.
type Client struct {
	Browser string `json:"browser"`
	OS      string `json:"os"`
	Device  string `json:"device"`
}

// DescribeClient parses a raw User-Agent header. Unknown parts read "Unknown".
func DescribeClient(raw string) Client {
	ua := useragent.Parse(raw)

	client := Client{
		Browser: strings.TrimSpace(ua.Name + " " + ua.Version),
		OS:      strings.TrimSpace(ua.OS + " " + ua.OSVersion),
	}
	if ua.Name == "" {
		client.Browser = "Unknown"
	}
	if ua.OS == "" {
		client.OS = "Unknown"
	}

	switch {
	case ua.Bot:
		client.Device = "bot"
	case ua.Tablet:
		client.Device = "tablet"
	case ua.Mobile:
		client.Device = "mobile"
	default:
		client.Device = "desktop"
	}
	return client
}
