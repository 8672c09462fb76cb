package validators

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/barbearia-web/internal/domain/schedule"
)

// RegisterBindings instala as tags hhmm e br_phone no validador do gin
// e passa a reportar os campos pelo nome JSON.
func RegisterBindings() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("validators: unexpected gin validator engine")
	}
	return Register(v)
}

func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return schedule.IsValidTimeHHMM(fl.Field().String())
	}); err != nil {
		return err
	}

	return v.RegisterValidation("br_phone", func(fl validator.FieldLevel) bool {
		return IsValidPhoneBR(fl.Field().String())
	})
}

// FieldErrors traduz os erros do validador para mensagens por campo.
// Devolve nil se err não for de validação.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			out[field] = "Campo obrigatório."
		case "email":
			out[field] = "E-mail inválido."
		case "min":
			out[field] = "Valor muito curto (mínimo " + fe.Param() + ")."
		case "max":
			out[field] = "Valor muito longo (máximo " + fe.Param() + ")."
		case "gte":
			out[field] = "Valor deve ser no mínimo " + fe.Param() + "."
		case "lte":
			out[field] = "Valor deve ser no máximo " + fe.Param() + "."
		case "oneof":
			out[field] = "Valor deve ser um de: " + fe.Param() + "."
		case "hhmm":
			out[field] = "Horário inválido (use HH:MM)."
		case "br_phone":
			out[field] = "Telefone deve ter 10 ou 11 dígitos."
		default:
			out[field] = "Valor inválido."
		}
	}
	return out
}
