package service

import (
	"github.com/condor-ops/pos-roster/internal/domain/contract"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Instance struct {
	Registry contract.RegistryService
	Roster   contract.RosterService
	Rotation contract.RotationService
	DayOff   contract.DayOffService
	Export   contract.ExportService
}

func NewInstance(dm contract.DataManager, logger *zap.Logger) *Instance {
	validate := validator.New(validator.WithRequiredStructEnabled())

	rotationService := newRotation(dm)
	dayOffService := newDayOff(dm)

	return &Instance{
		Registry: newRegistry(dm, validate, logger),
		Roster:   newRoster(dm, validate, logger),
		Rotation: rotationService,
		DayOff:   dayOffService,
		Export:   newExport(dm, rotationService, dayOffService, logger),
	}
}
