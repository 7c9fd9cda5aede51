package service

import (
	"github.com/condor-ops/pos-roster/internal/domain"
	"github.com/condor-ops/pos-roster/internal/domain/contract"
	"github.com/condor-ops/pos-roster/internal/domain/entity"
)

// dayOffBuckets enumerates the four category × shift buckets in the
// order the day-off views present them.
var dayOffBuckets = []struct {
	Category domain.WorkerCategory
	Shift    domain.ShiftBucket
}{
	{domain.CategoryInHouse, domain.ShiftMorning},
	{domain.CategoryInHouse, domain.ShiftAfternoon},
	{domain.CategoryOutsourced, domain.ShiftMorning},
	{domain.CategoryOutsourced, domain.ShiftAfternoon},
}

type dayOffService struct {
	dm contract.DataManager
}

func newDayOff(dm contract.DataManager) *dayOffService {
	return &dayOffService{dm: dm}
}

// WeekOverview groups the registry into 28 buckets: seven weekdays for
// each of the four category × shift buckets. Group members keep
// registry order. Pure aggregation, recomputed per call.
func (s *dayOffService) WeekOverview() ([]*entity.DayOffGroup, error) {
	employees, err := s.dm.Employee().List()
	if err != nil {
		return nil, err
	}

	var groups []*entity.DayOffGroup
	for _, bucket := range dayOffBuckets {
		for _, weekday := range domain.Weekdays {
			group := &entity.DayOffGroup{
				Weekday:  weekday,
				Category: bucket.Category,
				Shift:    bucket.Shift,
			}
			for _, e := range employees {
				if e.WeeklyDayOff != weekday {
					continue
				}
				if e.WorkerCategory != bucket.Category || e.ShiftBucket() != bucket.Shift {
					continue
				}
				group.Employees = append(group.Employees, e)
			}
			groups = append(groups, group)
		}
	}

	return groups, nil
}
