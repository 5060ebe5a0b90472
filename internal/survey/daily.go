package survey

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"prosono/client/internal/api"
)

const defaultQuality = 3

// DailyDraft is the single-step nightly log form. SleepDuration is what the
// participant types (an HH:MM duration) and is converted to minutes only when
// the payload is built.
type DailyDraft struct {
	WakeTime        string `validate:"required,hhmm"`
	Bedtime         string `validate:"required,hhmm"`
	SleepDuration   string `validate:"required,hhmm"`
	TimeToSleep     int    `validate:"gte=0"`
	NightAwakenings int    `validate:"gte=0"`
	Quality         int    `validate:"gte=0,lte=5"`
	Observation     string
	SurveyDate      string `validate:"required,displaydate"`
}

func NewDailyDraft() DailyDraft {
	return DailyDraft{
		Quality:    defaultQuality,
		SurveyDate: TodayDisplay(),
	}
}

// SetDate switches the draft to a different night. Every other field resets
// to its default so answers entered for one date are never submitted under
// another.
func (d *DailyDraft) SetDate(date string) {
	if date == d.SurveyDate {
		return
	}
	*d = NewDailyDraft()
	d.SurveyDate = date
}

// Validate runs every local check; nothing is sent to the backend until it
// passes. The returned error is always a *ValidationError naming one field.
func (d DailyDraft) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Field: "form", Message: err.Error()}
	}

	fe := fieldErrs[0]
	switch fe.Field() {
	case "WakeTime":
		return &ValidationError{Field: "wakeTime", Message: "wake time is required in HH:MM (00:00 to 23:59)"}
	case "Bedtime":
		return &ValidationError{Field: "bedtime", Message: "bedtime is required in HH:MM (00:00 to 23:59)"}
	case "SleepDuration":
		return &ValidationError{Field: "sleepDuration", Message: "sleep duration is required in HH:MM"}
	case "TimeToSleep":
		return &ValidationError{Field: "timeToSleep", Message: "minutes to fall asleep cannot be negative"}
	case "NightAwakenings":
		return &ValidationError{Field: "nightAwakenings", Message: "night awakenings cannot be negative"}
	case "Quality":
		return &ValidationError{Field: "quality", Message: "sleep quality must be between 0 and 5"}
	case "SurveyDate":
		return &ValidationError{Field: "surveyDate", Message: "survey date is required in DD-MM-YYYY"}
	default:
		return &ValidationError{Field: fe.Field(), Message: "invalid value"}
	}
}

// DailyWire is the POST /daily-surveys payload. A blank observation is
// omitted entirely rather than sent as an empty string.
type DailyWire struct {
	HoraLevantasteHoje     string `json:"horaLevantasteHoje"`
	HoraDeitasteOntem      string `json:"horaDeitasteOntem"`
	TempoAteAdormecer      int    `json:"tempoAteAdormecer"`
	VezesAcordasteNoite    int    `json:"vezesAcordasteNoite"`
	HorasQueDormiste       int    `json:"horasQueDormiste"`
	QualidadeSonoNoite     int    `json:"qualidadeSonoNoite"`
	ObservacaoNoitePassada string `json:"observacaoNoitePassada,omitempty"`
	SurveyDate             string `json:"surveyDate"`
}

// ToWire assumes Validate has passed: times are normalizable and the duration
// parses.
func (d DailyDraft) ToWire() DailyWire {
	wake, _ := ParseClock(d.WakeTime)
	bed, _ := ParseClock(d.Bedtime)
	minutes, _ := DurationToMinutes(d.SleepDuration)

	return DailyWire{
		HoraLevantasteHoje:     wake,
		HoraDeitasteOntem:      bed,
		TempoAteAdormecer:      d.TimeToSleep,
		VezesAcordasteNoite:    d.NightAwakenings,
		HorasQueDormiste:       minutes,
		QualidadeSonoNoite:     d.Quality,
		ObservacaoNoitePassada: strings.TrimSpace(d.Observation),
		SurveyDate:             ToWireDate(d.SurveyDate),
	}
}

// DailyReceipt is the record identity returned on submission.
type DailyReceipt struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// DailyRecord is an existing nightly log as returned by GET /daily-surveys.
type DailyRecord struct {
	DailyWire
	ID        int    `json:"id"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// DailyService submits and reads nightly sleep logs.
type DailyService struct {
	client *api.Client
	log    zerolog.Logger
}

func NewDailyService(client *api.Client, logger zerolog.Logger) *DailyService {
	return &DailyService{client: client, log: logger}
}

// Latest fetches the most recent nightly log; a 404 means none exists yet and
// is not an error.
func (s *DailyService) Latest(ctx context.Context) (*DailyRecord, error) {
	var record DailyRecord
	if err := s.client.Get(ctx, "/daily-surveys", &record); err != nil {
		if api.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// Submit validates the draft locally and posts it. Validation failures never
// reach the network.
func (s *DailyService) Submit(ctx context.Context, draft DailyDraft) (*DailyReceipt, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	var receipt DailyReceipt
	if err := s.client.Post(ctx, "/daily-surveys", draft.ToWire(), &receipt); err != nil {
		return nil, err
	}

	s.log.Info().Str("date", draft.SurveyDate).Msg("daily survey submitted")
	return &receipt, nil
}
