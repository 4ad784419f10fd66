// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package workflow

import (
	"regexp"
	"strconv"
	"strings"
)

// Mention is a reference to an issue found in free-form text.
type Mention struct {
	IssueNumber int  `json:"issue_number"`
	Resolved    bool `json:"resolved"`
}

// resolutionKeywords is ordered; longer forms come before their prefixes.
var resolutionKeywords = []string{
	"fixed", "fixes", "fix",
	"closed", "closes", "close",
	"resolved", "resolves", "resolve",
}

var issueReferencePattern = regexp.MustCompile(`#[1-9][0-9]*`)

// keywordSeparation is the number of characters allowed between the end of a
// resolution keyword and the '#' of the reference it resolves.
const keywordSeparation = 1

// Scan returns one Mention per issue reference in text, in text order. A
// reference is resolved when a resolution keyword is followed by exactly one
// whitespace character and then the reference, e.g. "Fixes #42".
func Scan(text string) []Mention {
	lower := strings.ToLower(text)

	references := issueReferencePattern.FindAllStringIndex(lower, -1)
	if len(references) == 0 {
		return nil
	}

	resolved := resolvedReferences(lower)

	mentions := make([]Mention, 0, len(references))
	for _, loc := range references {
		number, err := strconv.Atoi(lower[loc[0]+1 : loc[1]])
		if err != nil {
			// Only overflow can get here.
			continue
		}
		mentions = append(mentions, Mention{
			IssueNumber: number,
			Resolved:    resolved[loc[0]],
		})
	}

	return mentions
}

// resolvedReferences returns the offsets of every '#' that sits right after a
// resolution keyword.
func resolvedReferences(lower string) map[int]bool {
	resolved := map[int]bool{}

	for _, keyword := range resolutionKeywords {
		from := 0
		for {
			i := strings.Index(lower[from:], keyword)
			if i < 0 {
				break
			}
			p := from + i
			end := p + len(keyword)

			if loc := issueReferencePattern.FindStringIndex(lower[p:]); loc != nil {
				start := p + loc[0]
				if start == end+keywordSeparation && isSeparator(lower[end]) {
					resolved[start] = true
				}
			}

			from = end
		}
	}

	return resolved
}

func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// Merge collapses mentions by issue number. The first occurrence of each
// issue keeps its position and a later resolved occurrence upgrades it.
func Merge(mentions []Mention) []Mention {
	if len(mentions) == 0 {
		return nil
	}

	index := make(map[int]int, len(mentions))
	merged := make([]Mention, 0, len(mentions))
	for _, m := range mentions {
		if i, ok := index[m.IssueNumber]; ok {
			merged[i].Resolved = merged[i].Resolved || m.Resolved
			continue
		}
		index[m.IssueNumber] = len(merged)
		merged = append(merged, m)
	}

	return merged
}

// ScanAll scans every text and merges the result in the order the texts are
// given.
func ScanAll(texts ...string) []Mention {
	var all []Mention
	for _, text := range texts {
		all = append(all, Scan(text)...)
	}
	return Merge(all)
}

// Resolved returns the resolved mentions of an already merged set.
func Resolved(mentions []Mention) []Mention {
	var out []Mention
	for _, m := range mentions {
		if m.Resolved {
			out = append(out, m)
		}
	}
	return out
}
