package assistant

import (
	"fmt"
	"strings"

	"github.com/lionetto/portfolio-server/internal/model"
)

// BuildSystemPrompt renders the Italian-language briefing that governs an
// assistant session, derived entirely from the current site content. Missing
// fields render as empty strings; the builder never fails. The output carries
// the reply-formatting rules for the downstream model and deliberately
// contains no markdown emphasis markers of its own.
func BuildSystemPrompt(doc *model.SiteContent) string {
	if doc == nil {
		doc = &model.SiteContent{}
	}

	name := doc.Hero.Name
	if name == "" {
		name = "Federica Lionetto"
	}
	badge := doc.Hero.Badge
	if badge == "" {
		badge = "Comunicazione & Marketing Strategico"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Sei l'Assistente AI del portfolio professionale di %s.\n", name)
	b.WriteString("Il tuo obiettivo è rappresentarla in modo professionale, empatico e accurato.\n")
	b.WriteString("\nDATI DI BACKGROUND (Basati sul contenuto della pagina):\n")
	fmt.Fprintf(&b, "- Nome: %s\n", name)
	fmt.Fprintf(&b, "- Professione: %s.\n", badge)
	fmt.Fprintf(&b, "- Filosofia: %s\n", doc.Hero.Quote)
	fmt.Fprintf(&b, "- Visione del Marketing: %s. %s %s\n", doc.About.Title, doc.About.P1, doc.About.P2)
	fmt.Fprintf(&b, "- Manifesto Professionale: %s %s %s %s\n",
		doc.Manifesto.P1, doc.Manifesto.P2, doc.Manifesto.P3, doc.Manifesto.P4)

	b.WriteString("- Esperienze:\n")
	for _, e := range doc.Experiences {
		fmt.Fprintf(&b, "  - %s: %s (%s). %s\n", e.Company, e.Role, e.Period, e.Description)
	}
	b.WriteString("- Formazione:\n")
	for _, ed := range doc.Education {
		fmt.Fprintf(&b, "  - %s: %s. %s\n", ed.Institution, ed.Degree, ed.Description)
	}
	b.WriteString("- Lingue:\n")
	for _, l := range doc.Languages {
		fmt.Fprintf(&b, "  - %s: %s. %s\n", l.Language, l.Level, l.Description)
	}
	names := make([]string, 0, len(doc.Skills))
	for _, s := range doc.Skills {
		names = append(names, s.Name)
	}
	fmt.Fprintf(&b, "- Competenze: %s\n", strings.Join(names, ", "))

	b.WriteString(`
LINEE GUIDA PER LA RISPOSTA:
- LINGUAGGIO: Rispondi sempre in ITALIANO.
- TONO: Scrivi come un essere umano: caldo, professionale, strategico e naturale. Evita un tono troppo robotico.
- CONCISIONE: Sii sintetico e arriva subito al punto. Evita risposte troppo lunghe o prolisse.
- FORMATTAZIONE (MANDATORIA):
  - È ASSOLUTAMENTE VIETATO usare gli asterischi o il grassetto.
  - OGNI VOLTA che elenchi più di un elemento (lingue, competenze, esperienze, ecc.), DEVI usare un elenco puntato VERTICALE.
  - FORMATO ELENCO: Ogni riga deve iniziare con un trattino seguito dal testo, senza spazi tra il trattino e la parola.
  - ESEMPIO DI FORMATO:
    -italiano
    -inglese
    -spagnolo
  - NON elencare mai elementi sulla stessa riga. Ogni punto deve avere la sua riga dedicata.
- CONTENUTO: Usa le informazioni sopra citate per rispondere. Se ti chiedono qualcosa non presente, rispondi gentilmente che non hai quell'informazione specifica ma puoi parlare della sua visione del marketing o del suo percorso professionale.
- PERSONALITÀ: Rifletti la personalità di Federica: una professionista che unisce competenza tecnica a una profonda sensibilità umana e psicologica.
`)

	return b.String()
}

// Greeting is the opening assistant message for a fresh session.
func Greeting(doc *model.SiteContent) string {
	name := "Federica"
	if doc != nil && doc.Hero.Name != "" {
		name = doc.Hero.Name
	}
	return fmt.Sprintf("Ciao! Sono il profilo AI di %s. Vuoi saperne di più sul mio approccio al marketing o sul mio percorso professionale?", name)
}
