package api

import (
	"fmt"
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// maxMoneyPlaces сколько знаков после запятой допускается в денежных суммах запросов.
const maxMoneyPlaces = 2

// decimalValue отдает валидатору decimal.Decimal в виде строки, иначе валидатор уходит внутрь структуры.
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func parseDecimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	str, ok := fl.Field().Interface().(string)
	if !ok || str == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(str)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// validateDecimalGT0 сумма строго больше нуля.
func validateDecimalGT0(fl validator.FieldLevel) bool {
	d, ok := parseDecimalField(fl)
	return ok && d.IsPositive()
}

// validateMoney не больше maxMoneyPlaces знаков после запятой.
func validateMoney(fl validator.FieldLevel) bool {
	d, ok := parseDecimalField(fl)
	return ok && d.Equal(d.Truncate(maxMoneyPlaces))
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("validator registration: unexpected engine %T", binding.Validator.Engine())
	}
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	if err := v.RegisterValidation("decimal_gt0", validateDecimalGT0); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	if err := v.RegisterValidation("money", validateMoney); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	return nil
}
