package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"prosono/client/internal/survey"
)

var stdin = bufio.NewReader(os.Stdin)

func promptLine(label string) string {
	fmt.Print(label)
	line, _ := stdin.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptInt(label string) (int, error) {
	raw := promptLine(label)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("expected a number, got %q", raw)
	}
	return n, nil
}

func promptScale(label string, max int) (int, error) {
	n, err := promptInt(fmt.Sprintf("%s [0-%d]: ", label, max))
	if err != nil {
		return 0, err
	}
	if n < 0 || n > max {
		return 0, fmt.Errorf("answer must be between 0 and %d", max)
	}
	return n, nil
}

func promptBool(label string) (bool, error) {
	raw := strings.ToLower(promptLine(label + " [t/f]: "))
	switch raw {
	case "t", "true", "v":
		return true, nil
	case "f", "false":
		return false, nil
	}
	return false, fmt.Errorf("expected t or f, got %q", raw)
}

func promptAttitude() (survey.AttitudeAnswers, error) {
	var a survey.AttitudeAnswers
	questions := []struct {
		label string
		field *int
	}{
		{"I sleep badly or well", &a.DurmoMalOuBem},
		{"I like to sleep", &a.GostoDeDormir},
		{"I think sleep is important to me", &a.AchoSonoImportante},
		{"What I know about sleep", &a.OQueSeiSobreSono},
	}
	for _, q := range questions {
		n, err := promptScale(q.label, 10)
		if err != nil {
			return a, err
		}
		*q.field = n
	}
	return a, nil
}

func promptFrequency() (survey.FrequencyAnswers, error) {
	var f survey.FrequencyAnswers
	questions := []struct {
		label string
		field *int
	}{
		{"I fall asleep in morning classes", &f.AdormecoAulasManha},
		{"I get through a whole school day without tiredness", &f.AguentoDiaEscolaSemCansaco},
		{"I fall asleep in the last class of the day", &f.AdormecoUltimaAula},
		{"I get sleepy in a car ride longer than 5 minutes", &f.SonolentoCarro5Min},
		{"I stay wide awake the whole day", &f.BemAcordadoTodoDia},
		{"I fall asleep in afternoon classes", &f.AdormecoAulasTarde},
		{"I feel alert during classes", &f.DespertoDuranteAulas},
		{"I feel sleepy at the end of the school day", &f.SonolentoFimDiaAulas},
		{"I feel sleepy on the bus to school activities", &f.SonolentoAutocarroAtividade},
		{"In the morning at school I doze off", &f.ManhaEscolaAdormeco},
		{"In classes I feel wide awake", &f.BemDespertoAulas},
		{"I feel sleepy doing homework at night", &f.SonolentoTrabalhosCasaNoite},
		{"I am wide awake in the last class of the day", &f.DespertoUltimaAula},
		{"I fall asleep riding in a car, bus or train", &f.AdormecoTransportes},
		{"During the school day there were moments I dozed off", &f.MomentosAdormecoEscola},
		{"I fall asleep doing schoolwork at home in the evening", &f.AdormecoTrabalhosCasaNoite},
	}
	for _, q := range questions {
		n, err := promptScale(q.label, 4)
		if err != nil {
			return f, err
		}
		*q.field = n
	}
	return f, nil
}

func promptKnowledge() (survey.KnowledgeAnswers, error) {
	var k survey.KnowledgeAnswers
	statements := []struct {
		label string
		field *bool
	}{
		{"Sleeping too little makes you aggressive and irritable", &k.DormirPoucoAgressivoIrritadico},
		{"Falling asleep raises your body temperature", &k.AdormecerAumentaTemperaturaCorpo},
		{"Bedtime does not influence sleep quality", &k.HoraDormirNaoInfluenciaQualidadeSono},
		{"Using the computer at night harms sleep", &k.ComputadorNoitePrejudicaSono},
		{"Teenagers should sleep 8 hours", &k.AdolescentesDevemDormir8Horas},
		{"Concentration is independent of sleep", &k.ConcentracaoIndependenteDoSono},
		{"Sleep happens without brain activity", &k.DormirSemAtividadeCerebral},
		{"It makes no difference sleeping by day or by night", &k.IndiferenteDormirDiaOuNoite},
		{"Eating a lot right before bed harms sleep", &k.ComerMuitoAntesPrejudicaSono},
		{"Messaging at night harms sleep", &k.MensagensNoitePrejudicaSono},
		{"Sleeping too little increases illness", &k.DormirPoucoAumentaDoencas},
		{"Studying late is as effective as by day", &k.EstudarTardeIgualEficazDia},
		{"A lot of light at night shifts your rhythm", &k.MuitaLuzNoiteAlteraRitmo},
		{"Physical effort helps falling asleep", &k.EsforcoFisicoAjudaAdormecer},
		{"Lost sleep can be made up the next night", &k.CompensarSonoPerdidoNoiteSeguinte},
		{"Insufficient sleep can make you gain weight", &k.SonoInsuficienteEngordar},
		{"A nap does not affect night sleep", &k.SestaNaoAfetaSonoNoite},
		{"Sunlight helps you sleep well", &k.LuzSolAjudaDormirBem},
		{"Sleeping too little increases accidents", &k.DormirPoucoAumentaAcidentes},
		{"There are several types of sleep in a night", &k.VariosTiposSonoNoite},
	}
	for _, s := range statements {
		v, err := promptBool(s.label)
		if err != nil {
			return k, err
		}
		*s.field = v
	}
	return k, nil
}
