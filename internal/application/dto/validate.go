package dto

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/neryad/piki-backend/internal/domain"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validate aplica las etiquetas `validate` del DTO. Un campo requerido con valor cero
// (cadena vacía, 0, decimal 0 o puntero nil) se considera ausente.
func Validate(in any) error {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	})
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// decimalValue expone el decimal como float64 para que `required` rechace el cero.
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return nil
}
