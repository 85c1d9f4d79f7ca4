package flag

import (
	"github.com/elC0mpa/budget-doctor/model"
)

type service struct{}

type FlagService interface {
	GetParsedFlags() (model.Flags, error)
}
