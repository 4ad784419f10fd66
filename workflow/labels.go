// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package workflow

import "fmt"

// State is the kanban state of an issue.
type State int

const (
	StateNone State = iota
	StateTriage
	StateWorking
	StateAwaitingPullRequest
	StateFixed
	StateComplete
	StateMilestone
)

func (s State) String() string {
	switch s {
	case StateTriage:
		return "triage"
	case StateWorking:
		return "working"
	case StateAwaitingPullRequest:
		return "awaiting_pull_request"
	case StateFixed:
		return "fixed"
	case StateComplete:
		return "complete"
	case StateMilestone:
		return "milestone"
	default:
		return "none"
	}
}

// Target is where a transition moves an issue. Milestone is only meaningful
// for StateMilestone.
type Target struct {
	State     State
	Milestone int
}

var (
	Triage              = Target{State: StateTriage}
	Working             = Target{State: StateWorking}
	AwaitingPullRequest = Target{State: StateAwaitingPullRequest}
)

// MilestoneTarget is the target for a milestone column.
func MilestoneTarget(number int) Target {
	return Target{State: StateMilestone, Milestone: number}
}

func (t Target) String() string {
	if t.State == StateMilestone {
		return fmt.Sprintf("milestone(%d)", t.Milestone)
	}
	return t.State.String()
}

// legacyAwaitingPullRequest is an older spelling still found on some issues.
const legacyAwaitingPullRequest = "AwaitingPullRequest"

// Labels is the label text used for each workflow state, plus the label that
// marks an issue as a bug.
type Labels struct {
	Triage              string
	Working             string
	Fixed               string
	Complete            string
	AwaitingPullRequest string
	Bug                 string
}

// DefaultLabels returns the stock label names.
func DefaultLabels() Labels {
	return Labels{
		Triage:              "Triage",
		Working:             "Working",
		Fixed:               "Fixed",
		Complete:            "Complete",
		AwaitingPullRequest: "Awaiting PR",
		Bug:                 "Bug",
	}
}

func (l Labels) forState(s State) string {
	switch s {
	case StateTriage:
		return l.Triage
	case StateWorking:
		return l.Working
	case StateAwaitingPullRequest:
		return l.AwaitingPullRequest
	case StateFixed:
		return l.Fixed
	case StateComplete:
		return l.Complete
	}
	return ""
}

// IsWorkflow reports whether label is one of the workflow labels.
func (l Labels) IsWorkflow(label string) bool {
	return l.StateOf(label) != StateNone
}

// StateOf maps a single label to its workflow state, or StateNone.
func (l Labels) StateOf(label string) State {
	switch label {
	case l.Triage:
		return StateTriage
	case l.Working:
		return StateWorking
	case l.AwaitingPullRequest, legacyAwaitingPullRequest:
		return StateAwaitingPullRequest
	case l.Fixed:
		return StateFixed
	case l.Complete:
		return StateComplete
	}
	return StateNone
}

// Current returns the workflow state encoded in labels. If several workflow
// labels are present the first one wins.
func (l Labels) Current(labels []string) State {
	for _, label := range labels {
		if s := l.StateOf(label); s != StateNone {
			return s
		}
	}
	return StateNone
}

// HasBug reports whether labels carry the bug label.
func (l Labels) HasBug(labels []string) bool {
	return contains(labels, l.Bug)
}

// Transition returns the label set for an issue moved to target. Workflow
// labels other than the target's are dropped, the target's label is appended
// when missing, and every other label keeps its place.
func (l Labels) Transition(labels []string, target Target) []string {
	if target.State == StateMilestone {
		return l.replace(labels, "")
	}
	return l.replace(labels, l.forState(target.State))
}

// CloseResolution returns the label set for a closed issue: Fixed for bugs,
// Complete for everything else.
func (l Labels) CloseResolution(labels []string, hasBugLabel bool) []string {
	if hasBugLabel {
		return l.replace(labels, l.Fixed)
	}
	return l.replace(labels, l.Complete)
}

func (l Labels) replace(labels []string, keep string) []string {
	out := make([]string, 0, len(labels)+1)
	kept := false
	for _, label := range labels {
		if label == keep {
			if !kept {
				out = append(out, label)
				kept = true
			}
			continue
		}
		if l.IsWorkflow(label) {
			continue
		}
		out = append(out, label)
	}

	if keep != "" && !kept {
		out = append(out, keep)
	}

	return out
}

// Equal reports whether a and b hold the same labels, ignoring order.
func Equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, label := range a {
		seen[label]++
	}
	for _, label := range b {
		if seen[label] == 0 {
			return false
		}
		seen[label]--
	}
	return true
}

func contains(labels []string, label string) bool {
	if label == "" {
		return false
	}
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
