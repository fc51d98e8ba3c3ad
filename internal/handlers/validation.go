package handlers

import (
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	journalCodePattern = regexp.MustCompile(`^[A-Za-z0-9]{1,5}$`)
	registerOnce       sync.Once
)

// validJournalCode accepts one to five letters or digits.
func validJournalCode(fl validator.FieldLevel) bool {
	return journalCodePattern.MatchString(fl.Field().String())
}

// registerValidators adds the custom binding tags used by the DTOs.
func registerValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("journalcode", validJournalCode)
		}
	})
}
