package assistant

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/lionetto/portfolio-server/internal/model"
)

func promptFixtureDoc() *model.SiteContent {
	return &model.SiteContent{
		Hero: model.Hero{
			Name:  "Ada Rossi",
			Badge: "Brand Strategist",
			Quote: "\"Il dettaglio conta.\"",
		},
		About: model.About{Title: "Titolo", P1: "Prima.", P2: "Seconda."},
		Experiences: []model.ExperienceItem{
			{Company: "Acme", Role: "Consulente", Period: "2020-2021", Description: "Strategia social."},
		},
		Education: []model.EducationItem{
			{Institution: "Uni", Degree: "Laurea", Period: "2019", Description: "Comunicazione."},
		},
		Languages: []model.LanguageItem{
			{Language: "Italiano", Level: "Madrelingua", Description: "Lingua principale."},
		},
		Skills: []model.Skill{
			{Name: "SEO", Category: model.SkillProfessional},
			{Name: "Copywriting", Category: model.SkillProfessional},
		},
		Manifesto: model.Manifesto{P1: "Uno.", P2: "Due.", P3: "Tre.", P4: "Quattro."},
	}
}

func TestBuildSystemPromptGolden(t *testing.T) {
	got := BuildSystemPrompt(promptFixtureDoc())

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "system_prompt", []byte(got))
}

func TestBuildSystemPromptNeverEmitsEmphasisMarkers(t *testing.T) {
	docs := []*model.SiteContent{
		nil,
		{},
		promptFixtureDoc(),
		model.DefaultSiteContent(),
		{Hero: model.Hero{Name: "Solo Nome"}},
	}
	for _, doc := range docs {
		out := BuildSystemPrompt(doc)
		assert.NotContains(t, out, "*")
		assert.NotContains(t, out, "_")
		assert.NotEmpty(t, out)
	}
}

func TestBuildSystemPromptDegradesGracefully(t *testing.T) {
	out := BuildSystemPrompt(&model.SiteContent{})

	// Identity falls back to defaults; absent sections render as empty text.
	assert.Contains(t, out, "Federica Lionetto")
	assert.Contains(t, out, "Comunicazione & Marketing Strategico")
	assert.Contains(t, out, "- Esperienze:\n- Formazione:")
	assert.Contains(t, out, "LINEE GUIDA PER LA RISPOSTA")
}

func TestBuildSystemPromptFlattensListings(t *testing.T) {
	out := BuildSystemPrompt(model.DefaultSiteContent())

	assert.Contains(t, out, "- LC Mobili: Gestione Comunicazione & Marketing (2019-2026).")
	assert.Contains(t, out, "- Università degli Studi di Milano: Laurea in comunicazione e società.")
	assert.Contains(t, out, "- Spagnolo: Livello B2.")
	assert.Contains(t, out, "Comunicazione Strategica, Psicologia dei Mercati")
	// One listing per line within each section.
	assert.Equal(t, 3, strings.Count(out, "  - "+"LC Mobili")+strings.Count(out, "  - Yam Lab")+strings.Count(out, "  - Eventi & Hospitality"))
}

func TestGreeting(t *testing.T) {
	assert.Contains(t, Greeting(model.DefaultSiteContent()), "Federica Lionetto")
	assert.Contains(t, Greeting(nil), "Federica")
	assert.Contains(t, Greeting(&model.SiteContent{}), "profilo AI di Federica.")
}
