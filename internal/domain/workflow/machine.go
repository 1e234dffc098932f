package workflow

import (
	"fmt"

	"service_station/internal/domain/entities"
)

// Action is a role-scoped command against an order.
type Action string

const (
	ActionCreate                Action = "create"
	ActionStartDiagnostics      Action = "start_diagnostics"
	ActionSubmitDiagnosis       Action = "submit_diagnosis"
	ActionEditProposal          Action = "edit_proposal"
	ActionSubmitProposal        Action = "submit_proposal"
	ActionApplyDecisions        Action = "apply_decisions"
	ActionRejectAll             Action = "reject_all"
	ActionAssignWorkers         Action = "assign_workers"
	ActionStartWorkItem         Action = "start_work_item"
	ActionCompleteWorkItem      Action = "complete_work_item"
	ActionRequestQualityControl Action = "request_quality_control"
	ActionCompleteWork          Action = "complete_work"
	ActionPassQualityControl    Action = "pass_quality_control"
	ActionSettle                Action = "settle"
	ActionCancel                Action = "cancel"
)

// Rule is one entry of the authorization table.
type Rule struct {
	Target entities.OrderStatus
	Roles  []entities.Role
}

func (r Rule) allows(role entities.Role) bool {
	for _, v := range r.Roles {
		if v == role {
			return true
		}
	}
	return false
}

// Moves reports whether applying the rule changes the order status.
func (r Rule) Moves(from entities.OrderStatus) bool {
	return r.Target != from
}

// Options tune the workflow.
type Options struct {
	// RequireQualityControl removes the direct In_Work -> Ready edge.
	RequireQualityControl bool
}

// Machine is the order state machine: a single table mapping
// (current status, action) to the target status and the roles allowed to ask for it.
type Machine struct {
	rules map[entities.OrderStatus]map[Action]Rule
	opts  Options
}

func NewMachine(opts Options) *Machine {
	intake := []entities.Role{entities.RoleIntakeClerk}
	diagnostician := []entities.Role{entities.RoleDiagnostician}
	partsClerk := []entities.Role{entities.RolePartsClerk}
	technician := []entities.Role{entities.RoleTechnician}

	rules := map[entities.OrderStatus]map[Action]Rule{
		entities.OrderStatusNew: {
			ActionStartDiagnostics: {Target: entities.OrderStatusDiagnostics, Roles: intake},
		},
		entities.OrderStatusDiagnostics: {
			ActionSubmitDiagnosis: {Target: entities.OrderStatusPartsSelection, Roles: diagnostician},
		},
		entities.OrderStatusPartsSelection: {
			ActionEditProposal:   {Target: entities.OrderStatusPartsSelection, Roles: partsClerk},
			ActionSubmitProposal: {Target: entities.OrderStatusApproval, Roles: partsClerk},
		},
		entities.OrderStatusApproval: {
			ActionApplyDecisions: {Target: entities.OrderStatusApproval, Roles: intake},
			ActionRejectAll:      {Target: entities.OrderStatusClosed, Roles: intake},
			ActionAssignWorkers:  {Target: entities.OrderStatusInWork, Roles: intake},
		},
		entities.OrderStatusInWork: {
			ActionStartWorkItem:         {Target: entities.OrderStatusInWork, Roles: technician},
			ActionCompleteWorkItem:      {Target: entities.OrderStatusInWork, Roles: technician},
			ActionRequestQualityControl: {Target: entities.OrderStatusQualityControl, Roles: technician},
			ActionCompleteWork:          {Target: entities.OrderStatusReady, Roles: technician},
		},
		entities.OrderStatusQualityControl: {
			ActionPassQualityControl: {Target: entities.OrderStatusReady, Roles: technician},
		},
		entities.OrderStatusReady: {
			ActionSettle: {Target: entities.OrderStatusClosed, Roles: intake},
		},
	}
	if opts.RequireQualityControl {
		delete(rules[entities.OrderStatusInWork], ActionCompleteWork)
	}

	cancel := Rule{
		Target: entities.OrderStatusCancelled,
		Roles:  []entities.Role{entities.RoleIntakeClerk, entities.RoleAdministrator},
	}
	for status, actions := range rules {
		if !status.IsTerminal() {
			actions[ActionCancel] = cancel
		}
	}

	return &Machine{rules: rules, opts: opts}
}

func (m *Machine) Options() Options {
	return m.opts
}

// Authorize checks that role may perform action while the order is in status.
func (m *Machine) Authorize(status entities.OrderStatus, action Action, role entities.Role) (Rule, error) {
	if status.IsTerminal() {
		return Rule{}, fmt.Errorf("%w: order is %s", ErrIllegalTransition, status)
	}
	rule, ok := m.rules[status][action]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %s not allowed in %s", ErrIllegalTransition, action, status)
	}
	if !rule.allows(role) {
		return Rule{}, fmt.Errorf("%w: role %s may not %s in %s", ErrIllegalTransition, role, action, status)
	}
	return rule, nil
}

// Actions lists the actions role may perform in status.
func (m *Machine) Actions(status entities.OrderStatus, role entities.Role) []Action {
	var out []Action
	for action, rule := range m.rules[status] {
		if rule.allows(role) {
			out = append(out, action)
		}
	}
	return out
}

var payloadFree = map[Action]bool{
	ActionStartDiagnostics:      true,
	ActionRequestQualityControl: true,
	ActionCompleteWork:          true,
	ActionPassQualityControl:    true,
}

// TransitionAction resolves the action behind a bare "move to target" request.
// Only transitions that carry no payload can be requested this way.
func (m *Machine) TransitionAction(current, target entities.OrderStatus) (Action, error) {
	for action, rule := range m.rules[current] {
		if payloadFree[action] && rule.Target == target {
			return action, nil
		}
	}
	return "", fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current, target)
}

// QueueStatuses returns the statuses a role works on, for dashboards.
func QueueStatuses(role entities.Role) []entities.OrderStatus {
	switch role {
	case entities.RoleIntakeClerk:
		return []entities.OrderStatus{entities.OrderStatusNew, entities.OrderStatusApproval, entities.OrderStatusReady}
	case entities.RoleDiagnostician:
		return []entities.OrderStatus{entities.OrderStatusDiagnostics}
	case entities.RolePartsClerk:
		return []entities.OrderStatus{entities.OrderStatusPartsSelection}
	case entities.RoleTechnician:
		return []entities.OrderStatus{entities.OrderStatusInWork, entities.OrderStatusQualityControl}
	case entities.RoleAdministrator:
		var out []entities.OrderStatus
		for _, s := range entities.AllOrderStatuses {
			if !s.IsTerminal() {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
