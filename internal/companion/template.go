package companion

import (
	"path/filepath"
	"strings"
	"time"
)

// DateLayout is the timestamp layout used in the banner.
const DateLayout = "January 02, 2006 15:04:05"

// Banner holds the fixed strings written at the top of every companion file.
type Banner struct {
	Copyright string
	Author    string
	Email     string
}

// DefaultBanner returns the banner used when nothing is configured.
func DefaultBanner() Banner {
	return Banner{
		Copyright: "Copyright (c) All rights reserved.",
		Author:    "Your Name",
		Email:     "you@example.com",
	}
}

// Render builds the complete contents of the companion file at companionPath.
func (b Banner) Render(companionPath, includeLine string, at time.Time) string {
	var sb strings.Builder
	sb.WriteString("/*\n")
	sb.WriteString(" * " + b.Copyright + "\n")
	sb.WriteString(" *\n")
	sb.WriteString(" * @file   " + filepath.Base(companionPath) + "\n")
	sb.WriteString(" * @author " + b.Author + "\n")
	sb.WriteString(" * @email  " + b.Email + "\n")
	sb.WriteString(" * @date   " + at.Local().Format(DateLayout) + "\n")
	sb.WriteString(" */\n")
	sb.WriteString("\n")
	sb.WriteString(includeLine + "\n")
	sb.WriteString("\n\n")
	return sb.String()
}
