package appointment

import "github.com/BruksfildServices01/barbearia-web/internal/httperr"

type Role string

const (
	RoleCliente  Role = "cliente"
	RoleBarbeiro Role = "barbeiro"
	RoleDono     Role = "dono"
)

// ShopContext: dono e barbeiro atuam pela barbearia
func (r Role) ShopContext() bool {
	return r == RoleDono || r == RoleBarbeiro
}

func (r Role) allows(a Action) bool {
	switch a {
	case ActionConfirm, ActionFinalize:
		return r.ShopContext()
	case ActionRemove:
		return r == RoleDono
	case ActionCancel:
		return r == RoleCliente || r.ShopContext()
	case ActionReschedule, ActionReviewBarbeiro, ActionReviewBarbearia:
		return r == RoleCliente
	default:
		return false
	}
}

// Authorize decide se role pode executar action num agendamento em status
func Authorize(status Status, role Role, action Action) error {
	if !role.allows(action) {
		return httperr.ErrBusiness("action_not_allowed")
	}

	switch action {
	case ActionRemove:
		// remoção definitiva vale em qualquer status
		return nil
	case ActionReschedule:
		if status.Terminal() {
			return httperr.ErrBusiness("invalid_state")
		}
		return nil
	case ActionReviewBarbeiro, ActionReviewBarbearia:
		if status != StatusFinalizado {
			return httperr.ErrBusiness("invalid_state")
		}
		return nil
	default:
		_, err := Next(status, action)
		return err
	}
}

// ordem de exibição; remove fica de fora
var displayOrder = []Action{
	ActionConfirm,
	ActionFinalize,
	ActionCancel,
	ActionReschedule,
	ActionReviewBarbeiro,
	ActionReviewBarbearia,
}

// AvailableActions lista as ações que a interface deve oferecer
func AvailableActions(status Status, role Role) []Action {
	actions := []Action{}
	for _, a := range displayOrder {
		if Authorize(status, role, a) == nil {
			actions = append(actions, a)
		}
	}
	return actions
}
