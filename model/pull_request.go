// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package model

import (
	"time"
)

// PullRequest records the issue mentions boardsync last derived for a pull
// request.
type PullRequest struct {
	RepoOwner string
	RepoName  string
	Number    int
	Username  string
	Ref       string
	State     string
	Merged    *bool
	Mentions  MentionList
	UpdatedAt time.Time
}
