package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbearia-web/internal/httperr"
)

var (
	allStatuses = []Status{StatusPendente, StatusConfirmado, StatusEmAndamento, StatusFinalizado, StatusCancelado}
	allActions  = []Action{ActionConfirm, ActionFinalize, ActionCancel, ActionRemove, ActionReschedule, ActionReviewBarbeiro, ActionReviewBarbearia}
)

func TestNext_Table(t *testing.T) {
	want := map[Status]map[Action]Status{
		StatusPendente:    {ActionConfirm: StatusConfirmado, ActionCancel: StatusCancelado},
		StatusConfirmado:  {ActionFinalize: StatusFinalizado, ActionCancel: StatusCancelado},
		StatusEmAndamento: {ActionFinalize: StatusFinalizado},
	}

	for _, s := range allStatuses {
		for _, a := range allActions {
			next, err := Next(s, a)
			if expected, ok := want[s][a]; ok {
				require.NoError(t, err, "%s/%s", s, a)
				assert.Equal(t, expected, next)
				continue
			}
			assert.True(t, httperr.IsBusiness(err, "invalid_state"), "%s/%s", s, a)
		}
	}
}

func TestNext_UnknownStatus(t *testing.T) {
	_, err := Next("arquivado", ActionConfirm)
	assert.True(t, httperr.IsBusiness(err, "unknown_status"))
}

func TestParseStatus(t *testing.T) {
	for _, s := range allStatuses {
		got, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseStatus("scheduled")
	assert.Error(t, err)
}

func TestTerminal(t *testing.T) {
	assert.True(t, StatusFinalizado.Terminal())
	assert.True(t, StatusCancelado.Terminal())
	assert.False(t, StatusPendente.Terminal())
	assert.False(t, StatusEmAndamento.Terminal())
}
