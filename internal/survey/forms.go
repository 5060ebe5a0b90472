package survey

// The three evaluation questionnaires keep their Portuguese question
// identifiers: form types carry the names used by the questionnaire sheets,
// wire types carry the differently-named fields each backend endpoint
// expects. Every ToWire mapping is a total struct-to-struct rename, so a
// missing field is a compile error.

// AttitudeAnswers is "O meu sono": four 0-10 self-ratings.
type AttitudeAnswers struct {
	DurmoMalOuBem      int `json:"durmo_mal_ou_bem" validate:"gte=0,lte=10"`
	GostoDeDormir      int `json:"gosto_de_dormir" validate:"gte=0,lte=10"`
	AchoSonoImportante int `json:"acho_sono_importante" validate:"gte=0,lte=10"`
	OQueSeiSobreSono   int `json:"o_que_sei_sobre_sono" validate:"gte=0,lte=10"`
}

// AttitudeWire is the POST /my-sleep-surveys payload.
type AttitudeWire struct {
	DurmoMalOuBem             int    `json:"durmoMalOuBem"`
	GostoDeDormir             int    `json:"gostoDeDormir"`
	AchoSonoImportanteParaMim int    `json:"achoSonoImportanteParaMim"`
	OQueSeiSobreSono          int    `json:"oQueSeiSobreSono"`
	SurveyDate                string `json:"surveyDate"`
}

func (a AttitudeAnswers) ToWire(surveyDate string) AttitudeWire {
	return AttitudeWire{
		DurmoMalOuBem:             a.DurmoMalOuBem,
		GostoDeDormir:             a.GostoDeDormir,
		AchoSonoImportanteParaMim: a.AchoSonoImportante,
		OQueSeiSobreSono:          a.OQueSeiSobreSono,
		SurveyDate:                surveyDate,
	}
}

// FrequencyAnswers is the daytime sleepiness scale: sixteen 0-4 frequency
// ratings.
type FrequencyAnswers struct {
	AdormecoAulasManha          int `json:"adormeco_aulas_manha" validate:"gte=0,lte=4"`
	AguentoDiaEscolaSemCansaco  int `json:"aguento_dia_escola_sem_cansaco" validate:"gte=0,lte=4"`
	AdormecoUltimaAula          int `json:"adormeco_ultima_aula" validate:"gte=0,lte=4"`
	SonolentoCarro5Min          int `json:"sonolento_carro_5min" validate:"gte=0,lte=4"`
	BemAcordadoTodoDia          int `json:"bem_acordado_todo_dia" validate:"gte=0,lte=4"`
	AdormecoAulasTarde          int `json:"adormeco_aulas_tarde" validate:"gte=0,lte=4"`
	DespertoDuranteAulas        int `json:"desperto_durante_aulas" validate:"gte=0,lte=4"`
	SonolentoFimDiaAulas        int `json:"sonolento_fim_dia_aulas" validate:"gte=0,lte=4"`
	SonolentoAutocarroAtividade int `json:"sonolento_autocarro_atividade" validate:"gte=0,lte=4"`
	ManhaEscolaAdormeco         int `json:"manha_escola_adormeco" validate:"gte=0,lte=4"`
	BemDespertoAulas            int `json:"bem_desperto_aulas" validate:"gte=0,lte=4"`
	SonolentoTrabalhosCasaNoite int `json:"sonolento_trabalhos_casa_noite" validate:"gte=0,lte=4"`
	DespertoUltimaAula          int `json:"desperto_ultima_aula" validate:"gte=0,lte=4"`
	AdormecoTransportes         int `json:"adormeco_transportes" validate:"gte=0,lte=4"`
	MomentosAdormecoEscola      int `json:"momentos_adormeco_escola" validate:"gte=0,lte=4"`
	AdormecoTrabalhosCasaNoite  int `json:"adormeco_trabalhos_casa_noite" validate:"gte=0,lte=4"`
}

// FrequencyWire is the POST /cleveland-surveys payload.
type FrequencyWire struct {
	AdormecoduranteAulasManha                  int    `json:"adormecoduranteAulasManha"`
	ConsigoAguentarDiaInteiroEscolaSemCansaco  int    `json:"consigoAguentarDiaInteiroEscolaSemCansaco"`
	AdormecoUltimaAulaDia                      int    `json:"adormecoUltimaAulaDia"`
	FicoSonolentoCarroMais5Minutos             int    `json:"ficoSonolentoCarroMais5Minutos"`
	FicoBemAcordadoDuranteTodoDia              int    `json:"ficoBemAcordadoDuranteTodoDia"`
	AdormecoEscolaAulasTarde                   int    `json:"adormecoEscolaAulasTarde"`
	SintoMeDespertoDuranteAulas                int    `json:"sintoMeDespertoDuranteAulas"`
	SintoMeSonolentoFimDiaDepoisAulas          int    `json:"sintoMeSonolentoFimDiaDepoisAulas"`
	SintoMeSonolentoAutocarroAtividadeEscola   int    `json:"sintoMeSonolentoAutocarroAtividadeEscola"`
	DeManhaQuandoEstouEscolaAdormeco           int    `json:"deManhaQuandoEstouEscolaAdormeco"`
	QuandoEstouAulasSintoMeBemDesperto         int    `json:"quandoEstouAulasSintoMeBemDesperto"`
	SintoMeSonolentoTrabalhosCasaNoiteEscola   int    `json:"sintoMeSonolentoTrabalhosCasaNoiteEscola"`
	EstouBemDespertoUltimaAulaDia              int    `json:"estouBemDespertoUltimaAulaDia"`
	AdormecoQuandoAndoCarroAutocarroComboio    int    `json:"adormecoQuandoAndoCarroAutocarroComboio"`
	DuranteDiaEscolaMomentosAcabeiAdormecer    int    `json:"duranteDiaEscolaMomentosAcabeiAdormecer"`
	AdormecoQuandoFacoTrabalhosEscolaNoiteCasa int    `json:"adormecoQuandoFacoTrabalhosEscolaNoiteCasa"`
	SurveyDate                                 string `json:"surveyDate"`
}

func (f FrequencyAnswers) ToWire(surveyDate string) FrequencyWire {
	return FrequencyWire{
		AdormecoduranteAulasManha:                  f.AdormecoAulasManha,
		ConsigoAguentarDiaInteiroEscolaSemCansaco:  f.AguentoDiaEscolaSemCansaco,
		AdormecoUltimaAulaDia:                      f.AdormecoUltimaAula,
		FicoSonolentoCarroMais5Minutos:             f.SonolentoCarro5Min,
		FicoBemAcordadoDuranteTodoDia:              f.BemAcordadoTodoDia,
		AdormecoEscolaAulasTarde:                   f.AdormecoAulasTarde,
		SintoMeDespertoDuranteAulas:                f.DespertoDuranteAulas,
		SintoMeSonolentoFimDiaDepoisAulas:          f.SonolentoFimDiaAulas,
		SintoMeSonolentoAutocarroAtividadeEscola:   f.SonolentoAutocarroAtividade,
		DeManhaQuandoEstouEscolaAdormeco:           f.ManhaEscolaAdormeco,
		QuandoEstouAulasSintoMeBemDesperto:         f.BemDespertoAulas,
		SintoMeSonolentoTrabalhosCasaNoiteEscola:   f.SonolentoTrabalhosCasaNoite,
		EstouBemDespertoUltimaAulaDia:              f.DespertoUltimaAula,
		AdormecoQuandoAndoCarroAutocarroComboio:    f.AdormecoTransportes,
		DuranteDiaEscolaMomentosAcabeiAdormecer:    f.MomentosAdormecoEscola,
		AdormecoQuandoFacoTrabalhosEscolaNoiteCasa: f.AdormecoTrabalhosCasaNoite,
		SurveyDate:                                 surveyDate,
	}
}

// KnowledgeAnswers is "Ideias sobre o sono": twenty true/false statements.
// The wire payload for POST /surveys keeps the same field names, so the wire
// type only adds the survey date.
type KnowledgeAnswers struct {
	DormirPoucoAgressivoIrritadico       bool `json:"dormirPoucoAgressivoIrritadico"`
	AdormecerAumentaTemperaturaCorpo     bool `json:"adormecerAumentaTemperaturaCorpo"`
	HoraDormirNaoInfluenciaQualidadeSono bool `json:"horaDormirNaoInfluenciaQualidadeSono"`
	ComputadorNoitePrejudicaSono         bool `json:"computadorNoitePrejudicaSono"`
	AdolescentesDevemDormir8Horas        bool `json:"adolescentesDevemDormir8Horas"`
	ConcentracaoIndependenteDoSono       bool `json:"concentracaoIndependenteDoSono"`
	DormirSemAtividadeCerebral           bool `json:"dormirSemAtividadeCerebral"`
	IndiferenteDormirDiaOuNoite          bool `json:"indiferenteDormirDiaOuNoite"`
	ComerMuitoAntesPrejudicaSono         bool `json:"comerMuitoAntesPrejudicaSono"`
	MensagensNoitePrejudicaSono          bool `json:"mensagensNoitePrejudicaSono"`
	DormirPoucoAumentaDoencas            bool `json:"dormirPoucoAumentaDoencas"`
	EstudarTardeIgualEficazDia           bool `json:"estudarTardeIgualEficazDia"`
	MuitaLuzNoiteAlteraRitmo             bool `json:"muitaLuzNoiteAlteraRitmo"`
	EsforcoFisicoAjudaAdormecer          bool `json:"esforcoFisicoAjudaAdormecer"`
	CompensarSonoPerdidoNoiteSeguinte    bool `json:"compensarSonoPerdidoNoiteSeguinte"`
	SonoInsuficienteEngordar             bool `json:"sonoInsuficienteEngordar"`
	SestaNaoAfetaSonoNoite               bool `json:"sestaNaoAfetaSonoNoite"`
	LuzSolAjudaDormirBem                 bool `json:"luzSolAjudaDormirBem"`
	DormirPoucoAumentaAcidentes          bool `json:"dormirPoucoAumentaAcidentes"`
	VariosTiposSonoNoite                 bool `json:"variosTiposSonoNoite"`
}

// KnowledgeWire is the POST /surveys payload.
type KnowledgeWire struct {
	KnowledgeAnswers
	SurveyDate string `json:"surveyDate"`
}

func (k KnowledgeAnswers) ToWire(surveyDate string) KnowledgeWire {
	return KnowledgeWire{KnowledgeAnswers: k, SurveyDate: surveyDate}
}
