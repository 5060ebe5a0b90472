package survey

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prosono/client/internal/api"
	"prosono/client/internal/config"
	"prosono/client/internal/tokenstore"
)

func newDailyService(t *testing.T, router *gin.Engine) *DailyService {
	t.Helper()
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	cfg := &config.AppConfig{
		Environment: "test",
		API:         config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second},
	}
	store := tokenstore.New(filepath.Join(t.TempDir(), "tokens.json"), zerolog.Nop())
	client := api.New(cfg, store, zerolog.Nop())
	return NewDailyService(client, zerolog.Nop())
}

func validDailyDraft() DailyDraft {
	d := NewDailyDraft()
	d.WakeTime = "07:30"
	d.Bedtime = "23:00"
	d.SleepDuration = "08:15"
	d.TimeToSleep = 10
	d.NightAwakenings = 1
	d.Quality = 4
	d.SurveyDate = "25-12-2024"
	return d
}

func TestSetDateResetsDraft(t *testing.T) {
	d := validDailyDraft()
	d.Observation = "slept great"

	d.SetDate("26-12-2024")

	fresh := NewDailyDraft()
	fresh.SurveyDate = "26-12-2024"
	assert.Equal(t, fresh, d)
	assert.Equal(t, defaultQuality, d.Quality)
}

func TestSetDateSameDateKeepsAnswers(t *testing.T) {
	d := validDailyDraft()
	d.SetDate(d.SurveyDate)
	assert.Equal(t, "07:30", d.WakeTime)
}

func TestDailyValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*DailyDraft)
		field  string
	}{
		{"missing wake time", func(d *DailyDraft) { d.WakeTime = "" }, "wakeTime"},
		{"bad wake time", func(d *DailyDraft) { d.WakeTime = "25:00" }, "wakeTime"},
		{"bad bedtime minute", func(d *DailyDraft) { d.Bedtime = "22:61" }, "bedtime"},
		{"missing duration", func(d *DailyDraft) { d.SleepDuration = "" }, "sleepDuration"},
		{"negative time to sleep", func(d *DailyDraft) { d.TimeToSleep = -1 }, "timeToSleep"},
		{"negative awakenings", func(d *DailyDraft) { d.NightAwakenings = -2 }, "nightAwakenings"},
		{"quality too high", func(d *DailyDraft) { d.Quality = 6 }, "quality"},
		{"missing date", func(d *DailyDraft) { d.SurveyDate = "" }, "surveyDate"},
		{"wire-format date", func(d *DailyDraft) { d.SurveyDate = "2024-12-25" }, "surveyDate"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDailyDraft()
			tc.mutate(&d)

			err := d.Validate()
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}

	assert.NoError(t, validDailyDraft().Validate())
}

func TestDurationToMinutes(t *testing.T) {
	minutes, err := DurationToMinutes("08:15")
	require.NoError(t, err)
	assert.Equal(t, 495, minutes)

	minutes, err = DurationToMinutes("00:45")
	require.NoError(t, err)
	assert.Equal(t, 45, minutes)

	_, err = DurationToMinutes("8h15")
	assert.Error(t, err)
}

func TestDailySubmit(t *testing.T) {
	var payload map[string]json.RawMessage
	router := gin.New()
	router.POST("/daily-surveys", func(c *gin.Context) {
		assert.NoError(t, c.ShouldBindJSON(&payload))
		c.JSON(http.StatusCreated, gin.H{
			"id":        "ds-1",
			"createdAt": "2024-12-25T08:00:00Z",
			"updatedAt": "2024-12-25T08:00:00Z",
		})
	})

	svc := newDailyService(t, router)
	receipt, err := svc.Submit(context.Background(), validDailyDraft())

	require.NoError(t, err)
	assert.Equal(t, "ds-1", receipt.ID)

	assert.Equal(t, `"07:30"`, string(payload["horaLevantasteHoje"]))
	assert.Equal(t, `"23:00"`, string(payload["horaDeitasteOntem"]))
	assert.Equal(t, `495`, string(payload["horasQueDormiste"]))
	assert.Equal(t, `"2024-12-25"`, string(payload["surveyDate"]))
	// Blank observation is omitted, not sent as "".
	assert.NotContains(t, payload, "observacaoNoitePassada")
}

func TestDailySubmit_PadsTimes(t *testing.T) {
	var payload map[string]json.RawMessage
	router := gin.New()
	router.POST("/daily-surveys", func(c *gin.Context) {
		assert.NoError(t, c.ShouldBindJSON(&payload))
		c.JSON(http.StatusCreated, gin.H{"id": "ds-2"})
	})

	svc := newDailyService(t, router)
	draft := validDailyDraft()
	draft.WakeTime = "7:5"
	draft.SleepDuration = "8:15"

	_, err := svc.Submit(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, `"07:05"`, string(payload["horaLevantasteHoje"]))
	assert.Equal(t, `495`, string(payload["horasQueDormiste"]))
}

func TestDailySubmit_ObservationTrimmed(t *testing.T) {
	var payload map[string]json.RawMessage
	router := gin.New()
	router.POST("/daily-surveys", func(c *gin.Context) {
		assert.NoError(t, c.ShouldBindJSON(&payload))
		c.JSON(http.StatusCreated, gin.H{"id": "ds-3"})
	})

	svc := newDailyService(t, router)

	draft := validDailyDraft()
	draft.Observation = "   "
	_, err := svc.Submit(context.Background(), draft)
	require.NoError(t, err)
	assert.NotContains(t, payload, "observacaoNoitePassada")

	draft.Observation = "  woke up thirsty "
	_, err = svc.Submit(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, `"woke up thirsty"`, string(payload["observacaoNoitePassada"]))
}

func TestDailySubmit_InvalidDraftSkipsNetwork(t *testing.T) {
	router := gin.New()
	router.POST("/daily-surveys", func(c *gin.Context) {
		t.Error("invalid drafts must not reach the backend")
	})

	svc := newDailyService(t, router)
	draft := validDailyDraft()
	draft.Bedtime = "not-a-time"

	_, err := svc.Submit(context.Background(), draft)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDailyLatest(t *testing.T) {
	router := gin.New()
	router.GET("/daily-surveys", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": 7, "surveyDate": "2024-12-24"})
	})

	svc := newDailyService(t, router)
	record, err := svc.Latest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, 7, record.ID)
	assert.Equal(t, "2024-12-24", record.SurveyDate)
}

func TestDailyLatest_NoneYet(t *testing.T) {
	router := gin.New()
	router.GET("/daily-surveys", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "no surveys"})
	})

	svc := newDailyService(t, router)
	record, err := svc.Latest(context.Background())
	require.NoError(t, err)
	assert.Nil(t, record)
}
