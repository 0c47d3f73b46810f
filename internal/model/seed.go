package model

// DefaultSiteContent returns the document the content store is seeded with on
// first boot. It is also the fallback rendered by clients when the server is
// unreachable, so visitors never see a broken page.
func DefaultSiteContent() *SiteContent {
	return &SiteContent{
		Theme: Theme{
			FontSerif:       "Playfair Display",
			FontSans:        "Plus Jakarta Sans",
			PrimaryColor:    "#0f172a",
			BackgroundColor: "#f8fafc",
			TextColor:       "#334155",
			AccentColor:     "#64748b",
			ProfileImage:    "https://media.licdn.com/dms/image/v2/D4D03AQEZDyn4O1WruQ/profile-displayphoto-scale_200_200/B4DZpa38mmJIAc-/0/1762461212551?e=2147483647&v=beta&t=QR9zHl5Ro2dDhtJv8ngO_aV38RtY5271i3UdB0TxtFk",
		},
		Hero: Hero{
			Badge:  "Comunicazione & Marketing Strategico",
			Name:   "Federica Lionetto",
			Quote:  "\"La comunicazione non è un dettaglio. È ciò che determina il risultato.\"",
			AIText: "Non hai voglia di leggere tutti i miei dati? Chiedi alla mia assistente AI, che ho creato e addestrato per rispondere a tutte le tue domande su di me.",
		},
		About: About{
			Title: "Comprendere le persone significa comprendere il mercato.",
			P1:    "Marketing e psicologia non sono strumenti separati, ma parti di uno stesso processo: analizzare, ascoltare, interpretare e costruire strategie che non siano solo efficaci, ma autentiche.",
			P2:    "Crescere in un'azienda familiare mi ha insegnato che i problemi non sono limiti, ma processi da comprendere. Oggi affronto ogni sfida con metodo, calma e una profonda propensione al problem solving rapido.",
		},
		Experiences: []ExperienceItem{
			{
				Company:     "LC Mobili",
				Role:        "Gestione Comunicazione & Marketing",
				Period:      "2019-2026",
				Description: "Responsabile della comunicazione integrata: gestione e aggiornamento del sito web, definizione di strategie marketing sui social media, creazione di contenuti grafici e video. Coordinamento di collaborazioni con radio e TV locali. Gestione del rapporto diretto con il cliente e sviluppo di problem solving rapido in contesti operativi.",
			},
			{
				Company:     "Yam Lab",
				Role:        "Operativa & Relazione Clienti",
				Period:      "2023-2024",
				Description: "Gestione del rapporto con il cliente e della comunicazione del brand. Creazione di contenuti accattivanti (grafiche, video e storie) studiati per attrarre nuovi clienti. Risultati tangibili: molti clienti hanno confermato di aver preso appuntamento proprio grazie alla qualità e all'efficacia dei contenuti social prodotti.",
			},
			{
				Company:     "Eventi & Hospitality",
				Role:        "Hostess",
				Period:      "2022-2026 contratto a chiamata",
				Description: "Coordinamento logistico e gestione degli imprevisti in contesti organizzativi di alto livello. Capacità di problem solving immediato e gestione dello stress.",
			},
		},
		Education: []EducationItem{
			{
				Institution: "Innovazione Digitale",
				Degree:      "Corso AI & Copywriting",
				Period:      "2026",
				Description: "Specializzazione nella gestione di intelligenze artificiali generative per la produzione di contenuti video, fotografici e testuali. Qualificata come tecnico IA con competenze avanzate in copywriting e scrittura creativa.",
			},
			{
				Institution: "Università degli Studi di Milano",
				Degree:      "Laurea in comunicazione e società",
				Period:      "2021-2024",
				Description: "Focus su materie sociologiche, diritto, marketing, studio di radio e tv, per un approccio alla comunicazione a 360°. Esperienza Erasmus come pilastro di apertura mentale.",
			},
			{
				Institution: "Specializzazione Digital",
				Degree:      "Corso in Digital Marketing",
				Period:      "2019",
				Description: "Apprendimento approfondito di SEO, SEM e tecniche di marketing strategico. Utilizzo di piattaforme come Canva per la realizzazione di grafiche professionali e padronanza dei principali pilastri del digital marketing.",
			},
			{
				Institution: "Istituti Tecnici",
				Degree:      "Diploma di Ragioneria",
				Period:      "2014-2019",
				Description: "Solida base analitica in economia, diritto e lingue straniere.",
			},
		},
		Languages: []LanguageItem{
			{
				Language:    "Italiano",
				Level:       "Madrelingua",
				Description: "Lingua principale utilizzata in ambito professionale e accademico.",
			},
			{
				Language:    "Spagnolo",
				Level:       "Livello B2",
				Description: "Competenze consolidate e implementate grazie all'esperienza Erasmus vissuta in Spagna.",
			},
			{
				Language:    "Inglese",
				Level:       "Livello B2",
				Description: "Ottima padronanza della lingua, sia parlata che scritta, utilizzata per studio e ricerca.",
			},
		},
		Skills: []Skill{
			{Name: "Comunicazione Strategica", Category: SkillProfessional},
			{Name: "Psicologia dei Mercati", Category: SkillProfessional},
			{Name: "Marketing Digitale", Category: SkillProfessional},
			{Name: "Analisi Critica", Category: SkillProfessional},
			{Name: "Creazione Contenuti (foto, video)", Category: SkillProfessional},
			{Name: "Canva (per grafiche)", Category: SkillProfessional},
			{Name: "Gestione siti Wordpress", Category: SkillProfessional},
			{Name: "Creazione Campagne ADV su Meta", Category: SkillProfessional},
			{Name: "Problem Solving", Category: SkillInterpersonal},
			{Name: "Team Leadership", Category: SkillInterpersonal},
			{Name: "Ascolto Attivo", Category: SkillInterpersonal},
			{Name: "Adattabilità", Category: SkillInterpersonal},
		},
		Manifesto: Manifesto{
			Title: "Manifesto Professionale",
			P1:    "Sono cresciuta all'interno di un'azienda familiare, un contesto che mette alla prova equilibrio e lucidità.",
			P2:    "La svolta è arrivata con l'università e l'esperienza Erasmus.",
			P3:    "L'esperienza in Yam Lab ha consolidato la mia professionalità.",
			P4:    "Oggi cerco sfide che richiedano non solo competenza tecnica, ma una visione umana e strategica del business.",
		},
	}
}

// DefaultPortfolio returns the gallery the store is seeded with on first boot.
func DefaultPortfolio() []PortfolioItem {
	return []PortfolioItem{
		{
			ID:    "1",
			Image: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQL2bd5ONoJocQhUGCafULHLNRz_RWQhkPJRQ&s",
			Link:  "https://www.facebook.com/LCMobiliLionetto/photos/d41d8cd9/1352057459946831/",
			Title: "Social Media Design",
		},
		{
			ID:    "2",
			Image: "https://www.lcmobili.it/wp-content/uploads/2026/01/Grigio-Moderno-Divano-Annuncio-Post-Instagram.png",
			Link:  "https://www.lcmobili.it/",
			Title: "Web & Ad Strategy",
		},
		{
			ID:    "3",
			Image: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcSRr6rHt4i6eaMTTIEsJYtSZ47-nLipQovVnw&s",
			Link:  "https://www.facebook.com/LCMobiliLionetto/videos/",
			Title: "Video Content",
		},
		{
			ID:    "4",
			Image: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcTuG4rZn7_unHiNTqxd57MC_SMePfBZgHhjnw&s",
			Link:  "https://www.facebook.com/LCMobiliLionetto/videos/",
			Title: "Creative Production",
		},
	}
}
