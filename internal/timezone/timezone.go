package timezone

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "America/Sao_Paulo"

// Load resolve o fuso da barbearia; vazio usa o padrão
func Load(tz string) (*time.Location, error) {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("timezone: load %q: %w", tz, err)
	}
	return loc, nil
}

// Location nunca falha: fuso inválido cai no padrão (ou UTC sem tzdata)
func Location(tz string) *time.Location {
	if loc, err := Load(tz); err == nil {
		return loc
	}
	if loc, err := Load(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// Clock devolve o "agora" sempre no fuso loc
func Clock(loc *time.Location) func() time.Time {
	return func() time.Time {
		return time.Now().In(loc)
	}
}
