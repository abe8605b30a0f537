package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

var (
	// ErrInvalidWeekday возвращается при дне недели вне диапазона 0-6
	ErrInvalidWeekday = errors.New("invalid weekday")

	// ErrInvalidTimeFormat возвращается при времени не в формате HH:MM
	ErrInvalidTimeFormat = errors.New("invalid time format")
)

// Request модели

// DaySchedule шаблон одного дня недели
type DaySchedule struct {
	Weekday    int     `json:"weekday"`              // 0 = воскресенье ... 6 = суббота
	StartTime  string  `json:"startTime,omitempty"`  // "09:00", пусто для выходного
	EndTime    string  `json:"endTime,omitempty"`    // "18:00", пусто для выходного
	LunchStart *string `json:"lunchStart,omitempty"` // Начало обеда (опционально)
	LunchEnd   *string `json:"lunchEnd,omitempty"`   // Конец обеда (опционально)
	IsDayOff   bool    `json:"isDayOff"`
}

// UpsertWeekRequest запрос на замену недельного шаблона
type UpsertWeekRequest struct {
	UserID int64         `json:"userId"`
	Days   []DaySchedule `json:"days"`
}

// ToDomainDays конвертирует дни запроса в domain модели
func (r *UpsertWeekRequest) ToDomainDays() ([]domain.WeekdaySchedule, error) {
	days := make([]domain.WeekdaySchedule, 0, len(r.Days))

	for _, d := range r.Days {
		day, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	return days, nil
}

func (d DaySchedule) toDomain() (domain.WeekdaySchedule, error) {
	if d.Weekday < 0 || d.Weekday > 6 {
		return domain.WeekdaySchedule{}, fmt.Errorf("%w: %d", ErrInvalidWeekday, d.Weekday)
	}

	day := domain.WeekdaySchedule{
		Weekday:  time.Weekday(d.Weekday),
		IsDayOff: d.IsDayOff,
	}

	if d.IsDayOff {
		return day, nil
	}

	start, err := types.NewTimeStringFromString(d.StartTime)
	if err != nil {
		return domain.WeekdaySchedule{}, fmt.Errorf("%w: startTime %q", ErrInvalidTimeFormat, d.StartTime)
	}
	end, err := types.NewTimeStringFromString(d.EndTime)
	if err != nil {
		return domain.WeekdaySchedule{}, fmt.Errorf("%w: endTime %q", ErrInvalidTimeFormat, d.EndTime)
	}

	day.StartTime = start
	day.EndTime = end

	if d.LunchStart != nil {
		ls, err := types.NewTimeStringFromString(*d.LunchStart)
		if err != nil {
			return domain.WeekdaySchedule{}, fmt.Errorf("%w: lunchStart %q", ErrInvalidTimeFormat, *d.LunchStart)
		}
		day.LunchStart = &ls
	}
	if d.LunchEnd != nil {
		le, err := types.NewTimeStringFromString(*d.LunchEnd)
		if err != nil {
			return domain.WeekdaySchedule{}, fmt.Errorf("%w: lunchEnd %q", ErrInvalidTimeFormat, *d.LunchEnd)
		}
		day.LunchEnd = &le
	}

	return day, nil
}

// Response модели

// WeekScheduleResponse ответ с недельным шаблоном
type WeekScheduleResponse struct {
	ProfessionalID int64         `json:"professionalId"`
	Days           []DaySchedule `json:"days"`
}

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(ps domain.ProfessionalSchedule) *WeekScheduleResponse {
	resp := &WeekScheduleResponse{
		ProfessionalID: ps.ProfessionalID,
		Days:           make([]DaySchedule, 0, len(ps.Days)),
	}

	for _, day := range ps.Days {
		d := DaySchedule{
			Weekday:  int(day.Weekday),
			IsDayOff: day.IsDayOff,
		}

		if !day.IsDayOff {
			d.StartTime = day.StartTime.String()
			d.EndTime = day.EndTime.String()

			if day.LunchStart != nil {
				ls := day.LunchStart.String()
				d.LunchStart = &ls
			}
			if day.LunchEnd != nil {
				le := day.LunchEnd.String()
				d.LunchEnd = &le
			}
		}

		resp.Days = append(resp.Days, d)
	}

	return resp
}
