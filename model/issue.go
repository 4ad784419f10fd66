// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package model

import (
	"time"
)

const (
	StateOpen   = "open"
	StateClosed = "closed"
)

// Issue is the last known workflow snapshot of a GitHub issue.
type Issue struct {
	RepoOwner       string
	RepoName        string
	Number          int
	State           string
	Labels          StringArray
	MilestoneNumber *int64
	UpdatedAt       time.Time
}
