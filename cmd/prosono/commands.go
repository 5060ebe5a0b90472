package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/rs/zerolog"

	"prosono/client/internal/api"
	"prosono/client/internal/config"
	"prosono/client/internal/dashboard"
	"prosono/client/internal/models"
	"prosono/client/internal/session"
	"prosono/client/internal/survey"
)

type app struct {
	cfg     *config.AppConfig
	client  *api.Client
	session *session.Manager
	daily   *survey.DailyService
	logger  zerolog.Logger
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password (min 8 characters)")
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	birth := fs.String("birthdate", "", "birth date (YYYY-MM-DD)")
	gender := fs.String("gender", "", "gender (optional)")
	school := fs.String("school", "", "school (optional)")
	year := fs.Int("year", 0, "school year (optional)")
	_ = fs.Parse(args)

	err := a.session.Register(ctx, models.RegisterData{
		Email:      *email,
		Password:   *password,
		FirstName:  *first,
		LastName:   *last,
		BirthDate:  *birth,
		Gender:     *gender,
		School:     *school,
		SchoolYear: *year,
	})
	if err != nil {
		if api.IsConflict(err) {
			return fmt.Errorf("this email is already registered")
		}
		return err
	}

	// Registration never starts a session, so point at login instead of a
	// dashboard redirect.
	fmt.Println("Registration successful. You can now log in with: prosono login")
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	_ = fs.Parse(args)

	creds := models.LoginCredentials{Email: *email, Password: *password}
	if creds.Password == "" {
		creds.Password = promptLine("Password: ")
	}
	if creds.Email == "" {
		return fmt.Errorf("login requires -email")
	}

	if err := a.session.Login(ctx, creds); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s.\n", creds.Email)
	return nil
}

func (a *app) logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Println("Logged out.")
	return nil
}

func (a *app) refresh(ctx context.Context) error {
	if err := a.session.RefreshToken(ctx); err != nil {
		return err
	}
	fmt.Println("Access token refreshed.")
	return nil
}

func (a *app) profile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	update := fs.Bool("update", false, "apply the field flags as a profile update")
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	birth := fs.String("birthdate", "", "birth date (YYYY-MM-DD)")
	gender := fs.String("gender", "", "gender")
	school := fs.String("school", "", "school")
	year := fs.Int("year", 0, "school year")
	_ = fs.Parse(args)

	if !a.session.IsAuthenticated() {
		return fmt.Errorf("not logged in")
	}

	if *update {
		var u models.UserUpdate
		if *first != "" {
			u.FirstName = first
		}
		if *last != "" {
			u.LastName = last
		}
		if *birth != "" {
			u.BirthDate = birth
		}
		if *gender != "" {
			u.Gender = gender
		}
		if *school != "" {
			u.School = school
		}
		if *year != 0 {
			u.SchoolYear = year
		}
		if err := a.session.UpdateProfile(ctx, u); err != nil {
			return err
		}
	}

	user := a.session.CurrentUser()
	if user == nil {
		if err := a.session.RefreshUser(ctx); err != nil {
			return err
		}
		user = a.session.CurrentUser()
	}

	fmt.Printf("%s %s <%s>\n", user.FirstName, user.LastName, user.Email)
	fmt.Printf("Status: %s\n", user.Status)
	if user.School != "" {
		fmt.Printf("School: %s (year %d)\n", user.School, user.SchoolYear)
	}
	return nil
}

func (a *app) dashboard(ctx context.Context) error {
	if !a.session.IsAuthenticated() {
		return fmt.Errorf("not logged in")
	}
	if err := a.session.RefreshUser(ctx); err != nil {
		return err
	}
	fmt.Print(dashboard.Render(a.session.CurrentUser()))
	return nil
}

func (a *app) assess(ctx context.Context) error {
	if !a.session.IsAuthenticated() {
		return fmt.Errorf("not logged in")
	}

	wizard := survey.NewWizard(a.client, a.session, a.logger)

	fmt.Println("Sleep evaluation: three short questionnaires about your sleep.")
	if date := promptLine(fmt.Sprintf("Evaluation date [%s]: ", wizard.Draft().SurveyDate)); date != "" {
		if err := wizard.SetSurveyDate(date); err != nil {
			return err
		}
	}
	wizard.CompleteIntro()

	fmt.Println("\n-- My sleep (0 = strongly disagree, 10 = strongly agree) --")
	attitude, err := promptAttitude()
	if err != nil {
		return err
	}
	if err := wizard.CompleteAttitude(attitude); err != nil {
		return err
	}

	fmt.Println("\n-- Daytime sleepiness (0 = never, 4 = always) --")
	frequency, err := promptFrequency()
	if err != nil {
		return err
	}
	if err := wizard.CompleteFrequency(frequency); err != nil {
		return err
	}

	fmt.Println("\n-- Ideas about sleep (true/false) --")
	knowledge, err := promptKnowledge()
	if err != nil {
		return err
	}

	result, err := wizard.CompleteKnowledge(ctx, knowledge)
	if err != nil {
		return err
	}
	fmt.Println(result.Message)
	return nil
}

func (a *app) track(ctx context.Context) error {
	if !a.session.IsAuthenticated() {
		return fmt.Errorf("not logged in")
	}

	if latest, err := a.daily.Latest(ctx); err == nil && latest != nil {
		fmt.Printf("Last recorded night: %s\n", latest.SurveyDate)
	}

	draft := survey.NewDailyDraft()
	if date := promptLine(fmt.Sprintf("Night of [%s]: ", draft.SurveyDate)); date != "" {
		draft.SetDate(date)
	}

	draft.WakeTime = promptLine("What time did you get up today? (HH:MM) ")
	draft.Bedtime = promptLine("What time did you go to bed yesterday? (HH:MM) ")
	draft.SleepDuration = promptLine("How long did you sleep? (HH:MM) ")

	var err error
	if draft.TimeToSleep, err = promptInt("Minutes until you fell asleep: "); err != nil {
		return err
	}
	if draft.NightAwakenings, err = promptInt("Times you woke up during the night: "); err != nil {
		return err
	}
	if draft.Quality, err = promptInt("Sleep quality (0-5): "); err != nil {
		return err
	}
	draft.Observation = promptLine("Anything notable about last night? (optional) ")

	if _, err := a.daily.Submit(ctx, draft); err != nil {
		return err
	}
	fmt.Println("Night logged. See your progress with: prosono dashboard")
	return nil
}
