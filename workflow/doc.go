// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

// Package workflow holds the kanban rules of boardsync: finding issue
// references in commit and pull request text, merging them, and deciding
// which workflow label and board column an issue belongs in.
//
// Everything in this package is a pure function of its inputs. Callers fetch
// the current state from GitHub, ask this package for the new state, and
// persist the result themselves.
package workflow
