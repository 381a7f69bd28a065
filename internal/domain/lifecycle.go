package domain

import (
	"slices"
)

type Action string

const (
	ActionSendForApproval Action = "send_for_approval"
	ActionApprove         Action = "approve"
	ActionReject          Action = "reject"
	ActionComplete        Action = "complete"
)

type transitionRule struct {
	From TaskStatus
	To   TaskStatus

	// Roles allowed to trigger the action. CreatorOverride additionally
	// admits the task's own creator whatever their role is.
	Roles           []Role
	CreatorOverride bool
}

// The whole approval workflow lives in this one table. Both the API boundary
// and the action-visibility endpoint read it, so a rule changed here changes
// everywhere at once.
var transitionRules = map[Action]transitionRule{
	ActionSendForApproval: {
		From:            TaskStatusDraft,
		To:              TaskStatusInReview,
		Roles:           []Role{RoleCreativeTeam, RoleDigitalMarketer},
		CreatorOverride: true,
	},
	ActionApprove: {
		From:  TaskStatusInReview,
		To:    TaskStatusApproved,
		Roles: []Role{RoleManager},
	},
	ActionReject: {
		From:  TaskStatusInReview,
		To:    TaskStatusRejected,
		Roles: []Role{RoleManager},
	},
	// completed is reachable from approved only, by the people who do the
	// work: same guard as send_for_approval.
	ActionComplete: {
		From:            TaskStatusApproved,
		To:              TaskStatusCompleted,
		Roles:           []Role{RoleCreativeTeam, RoleDigitalMarketer},
		CreatorOverride: true,
	},
}

// actionOrder keeps VisibleActions deterministic for the UI.
var actionOrder = []Action{ActionSendForApproval, ActionApprove, ActionReject, ActionComplete}

func (r transitionRule) permits(task *Task, actor Actor) bool {
	if slices.Contains(r.Roles, actor.Role) {
		return true
	}
	return r.CreatorOverride && actor.ID == task.CreatedByID
}

// AuthorizeTransition decides whether actor may apply action to task and
// returns the resulting status. It is a pure function of its arguments and
// must be re-evaluated on every request. The two failure kinds are distinct:
// a task not in the action's source state fails with InvalidTransition even
// when the role would otherwise be allowed, a permitted source state with the
// wrong actor fails with Unauthorized.
func AuthorizeTransition(task *Task, actor Actor, action Action) (TaskStatus, error) {
	rule, ok := transitionRules[action]
	if !ok {
		return "", ValidationError("unknown action %q", action)
	}

	if task.Status != rule.From {
		return "", InvalidTransitionError("cannot %s a task in status %q", action, task.Status)
	}

	if !rule.permits(task, actor) {
		return "", UnauthorizedError("role %q is not allowed to %s this task", actor.Role, action)
	}

	return rule.To, nil
}

// VisibleActions returns the lifecycle actions whose guards pass for the
// given task and actor. Terminal states other than approved expose nothing.
func VisibleActions(task *Task, actor Actor) []Action {
	actions := make([]Action, 0)
	for _, action := range actionOrder {
		rule := transitionRules[action]
		if task.Status == rule.From && rule.permits(task, actor) {
			actions = append(actions, action)
		}
	}
	return actions
}
