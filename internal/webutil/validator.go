package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	pt_br_translations "github.com/go-playground/validator/v10/translations/pt_BR"
)

// Validator is the shared validator instance.
var Validator *validator.Validate

// Trans translates validation messages for the client (the diary's user
// language is Brazilian Portuguese).
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"nota_humor": "nota de humor",
	"titulo":     "título",
	"nome_curto": "nome curto",
	"texto":      "texto",
	"metas":      "metas",
	"opcao":      "opção",
}

func init() {
	Validator = validator.New()

	// Report field names by their json tag.
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	ptBR := pt_BR.New()
	uni := ut.New(ptBR, ptBR)
	var found bool
	Trans, found = uni.GetTranslator("pt_BR")
	if !found {
		log.Fatal("translator not found")
	}

	if err := pt_br_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			fieldName := fe.Field()
			translatedFieldName, ok := fieldNameTranslations[fieldName]
			if !ok {
				translatedFieldName = fieldName
			}
			t, _ := ut.T(tag, translatedFieldName)
			return t
		})
	}

	registerTranslation("required", "{0} é obrigatório.")

	// min/max need the parameter threaded through.
	registerRangeTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			fieldName := fe.Field()
			translatedFieldName, ok := fieldNameTranslations[fieldName]
			if !ok {
				translatedFieldName = fieldName
			}
			t, _ := ut.T(tag, translatedFieldName, fe.Param())
			return t
		})
	}

	registerRangeTranslation("min", "{0} deve ser no mínimo {1}.")
	registerRangeTranslation("max", "{0} deve ser no máximo {1}.")
}
