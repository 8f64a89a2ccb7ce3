package services

import (
	"context"
	"fmt"
	"slices"

	"dentalclinic/internal/controller"
	"dentalclinic/internal/domain"
	"dentalclinic/internal/domain/models"
	"dentalclinic/internal/query"
	"dentalclinic/internal/utils"
)

// SlotCheck reports whether a dentist already has an appointment at a given
// date and time.
type SlotCheck struct {
	Dentist   string               `json:"dentist"`
	Date      string               `json:"date"`
	Time      string               `json:"time"`
	Available bool                 `json:"available"`
	Conflicts []models.Appointment `json:"conflicts"`
}

// AppointmentService answers agenda questions through the same filter
// evaluator the appointments screen uses.
type AppointmentService struct {
	Source    controller.Source[models.Appointment]
	RequestID string
}

// CheckSlot lists the non-cancelled appointments of dentist on date at clock.
func (s AppointmentService) CheckSlot(ctx context.Context, dentist, date, clock string) (SlotCheck, error) {
	dentist = utils.TrimOrEmpty(dentist)
	date = utils.TrimOrEmpty(date)
	clock = utils.TrimOrEmpty(clock)
	if dentist == "" {
		return SlotCheck{}, domain.ValidationError{Field: "dentist", Msg: "obrigatório"}
	}
	if _, err := utils.ParseDate(date); err != nil {
		return SlotCheck{}, domain.ValidationError{Field: "date", Msg: "use o formato AAAA-MM-DD", Err: err}
	}
	if _, err := utils.ParseClock(clock); err != nil {
		return SlotCheck{}, domain.ValidationError{Field: "time", Msg: "use o formato HH:MM", Err: err}
	}

	records, err := s.Source.FetchAll(ctx)
	if err != nil {
		return SlotCheck{}, fmt.Errorf("fetch appointments: %w", err)
	}

	schema := query.NewSchema(appointmentFields()...)
	notCancelled := func(a models.Appointment) bool {
		return domain.AppointmentStatus.Rank(a.Status) != domain.AppointmentStatus.Rank("cancelado")
	}
	preds := []query.Predicate[models.Appointment]{
		query.FilterPredicate(schema, "dentist", dentist),
		query.FilterPredicate(schema, "date", date),
		query.FilterPredicate(schema, "time", clock),
		notCancelled,
	}

	conflicts := []models.Appointment{}
	for _, a := range records {
		if !slices.ContainsFunc(preds, func(p query.Predicate[models.Appointment]) bool { return !p(a) }) {
			conflicts = append(conflicts, a)
		}
	}

	utils.LogEvent(s.RequestID, "appointments", "slot_check",
		fmt.Sprintf("dentist=%q date=%s time=%s conflicts=%d", dentist, date, clock, len(conflicts)))
	return SlotCheck{
		Dentist:   dentist,
		Date:      date,
		Time:      clock,
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}
