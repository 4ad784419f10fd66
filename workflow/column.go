// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package workflow

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every lookup failure in this package.
var ErrNotFound = errors.New("not found")

// NotFoundError reports a column or milestone name that has no match.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Milestone is a read-only snapshot of a repository milestone.
type Milestone struct {
	Number int
	Title  string
}

// Columns names the board columns bound to fixed workflow states. Every
// other column is taken to be a milestone title.
type Columns struct {
	Triage  string
	Working string
	Done    string
}

// DefaultColumns returns the stock column names.
func DefaultColumns() Columns {
	return Columns{
		Triage:  "Triage",
		Working: "In progress",
		Done:    "Done",
	}
}

// IsFixed reports whether column maps to a state without a milestone lookup.
func (c Columns) IsFixed(column string) bool {
	return column == c.Triage || column == c.Working || column == c.Done
}

// Route maps a column name to the target state. Non-fixed columns are
// matched against milestone titles exactly.
func (c Columns) Route(column string, milestones []Milestone) (Target, error) {
	switch column {
	case c.Triage:
		return Triage, nil
	case c.Working:
		return Working, nil
	case c.Done:
		return AwaitingPullRequest, nil
	}

	for _, m := range milestones {
		if m.Title == column {
			return MilestoneTarget(m.Number), nil
		}
	}

	return Target{}, &NotFoundError{Kind: "milestone for column", Name: column}
}

// Column is the inverse of Route: the column an issue in target belongs in.
// Closed states have no column.
func (c Columns) Column(target Target, milestones []Milestone) (string, error) {
	switch target.State {
	case StateTriage:
		return c.Triage, nil
	case StateWorking:
		return c.Working, nil
	case StateAwaitingPullRequest:
		return c.Done, nil
	case StateMilestone:
		for _, m := range milestones {
			if m.Number == target.Milestone {
				return m.Title, nil
			}
		}
		return "", &NotFoundError{Kind: "milestone", Name: fmt.Sprintf("#%d", target.Milestone)}
	}
	return "", &NotFoundError{Kind: "column for state", Name: target.State.String()}
}
