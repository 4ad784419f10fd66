// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"fmt"
	"strings"

	"github.com/mattermost/mattermost-boardsync/workflow"
)

const (
	mentionSectionStart = "<!-- boardsync:mentions -->"
	mentionSectionEnd   = "<!-- /boardsync:mentions -->"
)

// mentionSectionBounds returns the byte range of the generated section. A
// section missing its end marker runs to the end of the body.
func mentionSectionBounds(body string) (start, end int, ok bool) {
	start = strings.Index(body, mentionSectionStart)
	if start < 0 {
		return 0, 0, false
	}
	rel := strings.Index(body[start:], mentionSectionEnd)
	if rel < 0 {
		return start, len(body), true
	}
	return start, start + rel + len(mentionSectionEnd), true
}

func renderMentionSection(mentions []workflow.Mention) string {
	if len(mentions) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(mentionSectionStart)
	b.WriteString("\n")
	for _, m := range mentions {
		if m.Resolved {
			fmt.Fprintf(&b, "Fixes #%d\n", m.IssueNumber)
		} else {
			fmt.Fprintf(&b, "Related to #%d\n", m.IssueNumber)
		}
	}
	b.WriteString(mentionSectionEnd)
	return b.String()
}

// stripMentionSection removes the generated section so it is never scanned
// as if the author wrote it.
func stripMentionSection(body string) string {
	return withMentionSection(body, nil)
}

// withMentionSection returns body with the generated section rewritten for
// mentions. Text around the section is kept as is.
func withMentionSection(body string, mentions []workflow.Mention) string {
	section := renderMentionSection(mentions)

	start, end, ok := mentionSectionBounds(body)
	if !ok {
		if section == "" {
			return body
		}
		if strings.TrimSpace(body) == "" {
			return section
		}
		return strings.TrimRight(body, "\r\n") + "\n\n" + section
	}

	if section != "" {
		return body[:start] + section + body[end:]
	}

	before := strings.TrimRight(body[:start], "\r\n")
	after := strings.TrimLeft(body[end:], "\r\n")
	switch {
	case before == "":
		return after
	case after == "":
		return before
	}
	return before + "\n\n" + after
}
