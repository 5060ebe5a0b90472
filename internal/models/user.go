package models

import "time"

// UserStatus tracks where a participant is in the program: the initial
// evaluation, the nightly tracking phase, or the closing evaluation.
type UserStatus string

const (
	StatusPreEvaluation  UserStatus = "pre_evaluation"
	StatusSleepTracking  UserStatus = "sleep_tracking"
	StatusPostEvaluation UserStatus = "post_evaluation"
)

// MeanMetrics holds a rolling mean over three windows. A nil entry means the
// backend had no data for that window yet.
type MeanMetrics struct {
	Last7Days  *float64 `json:"last7Days"`
	Last15Days *float64 `json:"last15Days"`
	Last30Days *float64 `json:"last30Days"`
}

// DailySurveys is the aggregated nightly-log summary computed server-side.
// Raw logs are never exposed to the client.
type DailySurveys struct {
	Target             int         `json:"target"`
	Dates              []string    `json:"dates"`
	Streak             int         `json:"streak"`
	MeanSleepDuration  MeanMetrics `json:"meanSleepDuration"`   // minutes
	MeanWakeTime       MeanMetrics `json:"meanWakeTime"`        // minutes from midnight
	MeanBedtime        MeanMetrics `json:"meanBedtime"`         // minutes from midnight
	MeanTimeToSleep    MeanMetrics `json:"meanTimeToSleep"`     // minutes
	MeanNightAwakening MeanMetrics `json:"meanNightAwakenings"` // count
	MeanSleepQuality   MeanMetrics `json:"meanSleepQuality"`    // 0-5 scale
}

// MySleepMeans are the per-question means of one attitude survey record.
type MySleepMeans struct {
	DurmoMalOuBem             float64 `json:"durmoMalOuBem"`
	GostoDeDormir             float64 `json:"gostoDeDormir"`
	AchoSonoImportanteParaMim float64 `json:"achoSonoImportanteParaMim"`
	OQueSeiSobreSono          float64 `json:"oQueSeiSobreSono"`
}

// EvaluationSurvey summarizes one completed assessment date.
type EvaluationSurvey struct {
	Date          string        `json:"date"`
	Score         float64       `json:"score"`
	MySleepMeans  *MySleepMeans `json:"mySleepMeans"`
	ClevelandMean *float64      `json:"clevelandMean"`
}

type User struct {
	ID                string             `json:"id"`
	Email             string             `json:"email"`
	FirstName         string             `json:"firstName"`
	LastName          string             `json:"lastName"`
	BirthDate         string             `json:"birthDate,omitempty"`
	Gender            string             `json:"gender,omitempty"`
	School            string             `json:"school,omitempty"`
	SchoolYear        int                `json:"schoolYear,omitempty"`
	Status            UserStatus         `json:"status"`
	EvaluationSurveys []EvaluationSurvey `json:"evaluationSurveys,omitempty"`
	DailySurveys      *DailySurveys      `json:"dailySurveys,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

// UserUpdate carries a partial profile update. Email is immutable after
// creation and therefore absent. Nil fields are left untouched server-side.
type UserUpdate struct {
	FirstName  *string `json:"firstName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	BirthDate  *string `json:"birthDate,omitempty"`
	Gender     *string `json:"gender,omitempty"`
	School     *string `json:"school,omitempty"`
	SchoolYear *int    `json:"schoolYear,omitempty"`
}
