package appointment

import "github.com/BruksfildServices01/barbearia-web/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPendente    Status = "pendente"
	StatusConfirmado  Status = "confirmado"
	StatusEmAndamento Status = "em_andamento"
	StatusFinalizado  Status = "finalizado"
	StatusCancelado   Status = "cancelado"
)

// ParseStatus rejeita status desconhecidos
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPendente, StatusConfirmado, StatusEmAndamento, StatusFinalizado, StatusCancelado:
		return Status(s), nil
	default:
		return "", httperr.ErrBusiness("unknown_status")
	}
}

// Terminal: finalizado e cancelado não mudam mais
func (s Status) Terminal() bool {
	return s == StatusFinalizado || s == StatusCancelado
}

// ===============================
// Actions
// ===============================

type Action string

const (
	ActionConfirm         Action = "confirm"
	ActionFinalize        Action = "finalize"
	ActionCancel          Action = "cancel"
	ActionRemove          Action = "remove"
	ActionReschedule      Action = "reschedule"
	ActionReviewBarbeiro  Action = "review_barbeiro"
	ActionReviewBarbearia Action = "review_barbearia"
)

// ===============================
// Transition table
// ===============================

var transitions = map[Status]map[Action]Status{
	StatusPendente: {
		ActionConfirm: StatusConfirmado,
		ActionCancel:  StatusCancelado,
	},
	StatusConfirmado: {
		ActionFinalize: StatusFinalizado,
		ActionCancel:   StatusCancelado,
	},
	StatusEmAndamento: {
		ActionFinalize: StatusFinalizado,
	},
	StatusFinalizado: {},
	StatusCancelado:  {},
}

// Next devolve o próximo status para uma ação que muda o status
func Next(current Status, action Action) (Status, error) {
	actions, ok := transitions[current]
	if !ok {
		return "", httperr.ErrBusiness("unknown_status")
	}
	next, ok := actions[action]
	if !ok {
		return "", httperr.ErrBusiness("invalid_state")
	}
	return next, nil
}
