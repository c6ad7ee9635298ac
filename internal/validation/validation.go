package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	sdk "github.com/whiteelite/solana-gateway/internal/infrastructure/blockchain/solana"
	pkgerrors "github.com/whiteelite/solana-gateway/pkg/errors"
)

const (
	MsgMissingFields     = "Missing required fields"
	MsgAmountNotPositive = "Amount must be greater than 0"
	MsgInvalidFields     = "Invalid request fields"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return v
}

// Struct validates dest against its validate tags. A failed amount rule
// wins over missing fields so zero amounts are reported before anything else.
func Struct(dest any) error {
	err := validate.Struct(dest)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, MsgInvalidFields)
	}

	details := map[string]string{}
	var amount, missing bool
	for _, fieldErr := range errs {
		details[fieldErr.Field()] = validationMessage(fieldErr)
		switch fieldErr.Tag() {
		case "gt":
			amount = true
		case "required":
			missing = true
		}
	}

	message := MsgInvalidFields
	switch {
	case amount:
		message = MsgAmountNotPositive
	case missing:
		message = MsgMissingFields
	}
	return pkgerrors.New(pkgerrors.CodeValidation, message).WithDetails(details)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	}
	return "is invalid"
}

// BuildError classifies an error returned while building an instruction or
// signature: undecodable input is malformed, anything else is internal.
func BuildError(err error) error {
	if err == nil {
		return nil
	}
	if sdk.IsInputError(err) {
		return pkgerrors.Wrap(pkgerrors.CodeMalformed, err, err.Error())
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "instruction build failed")
}
