package binder

import (
	"net/url"
	"regexp"
	"time"

	"github.com/fyyurapp/fyyur/pkg/models"
	"github.com/go-playground/validator/v10"
)

var (
	phoneRE = regexp.MustCompile(`^[0-9]{3}-[0-9]{3}-[0-9]{4}$`)

	usStates = map[string]struct{}{}
)

// USStates lists the state codes venues and artists can be located in.
var USStates = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI",
	"ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "MD", "MA", "MI", "MN",
	"MS", "MO", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA",
	"WV", "WI", "WY",
}

func init() {
	for _, s := range USStates {
		usStates[s] = struct{}{}
	}
}

// phoneValidator accepts US numbers written as xxx-xxx-xxxx.
func phoneValidator(fl validator.FieldLevel) bool {
	return phoneRE.MatchString(fl.Field().String())
}

// urlValidator accepts absolute http(s) URLs or the empty string, so optional
// links can be left blank. Add `required` to the tag when a link must be set.
func urlValidator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func usStateValidator(fl validator.FieldLevel) bool {
	_, ok := usStates[fl.Field().String()]
	return ok
}

// showtimeValidator ensures the value matches YYYY-MM-DD HH:MM:SS.
func showtimeValidator(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.ShowTimeLayout, fl.Field().String())
	return err == nil
}
