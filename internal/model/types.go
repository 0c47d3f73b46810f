package model

// Theme holds the visual identity of the site. ProfileImage is either an
// absolute URL or a locally hosted /uploads/ path.
type Theme struct {
	FontSerif       string `json:"fontSerif"`
	FontSans        string `json:"fontSans"`
	PrimaryColor    string `json:"primaryColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	AccentColor     string `json:"accentColor"`
	ProfileImage    string `json:"profileImage"`
}

// Hero is the landing section copy.
type Hero struct {
	Badge  string `json:"badge"`
	Name   string `json:"name"`
	Quote  string `json:"quote"`
	AIText string `json:"aiText"`
}

// About is the introduction section.
type About struct {
	Title string `json:"title"`
	P1    string `json:"p1"`
	P2    string `json:"p2"`
}

// ExperienceItem is one work-history entry. Slice order is display order.
type ExperienceItem struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// EducationItem is one education entry.
type EducationItem struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// LanguageItem is one spoken-language entry.
type LanguageItem struct {
	Language    string `json:"language"`
	Level       string `json:"level"`
	Description string `json:"description"`
}

// SkillCategory partitions skills between the two rendered columns.
type SkillCategory string

const (
	SkillProfessional  SkillCategory = "professional"
	SkillInterpersonal SkillCategory = "interpersonal"
)

// Skill is one named competence.
type Skill struct {
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
}

// Manifesto is the closing personal-statement section.
type Manifesto struct {
	Title string `json:"title"`
	P1    string `json:"p1"`
	P2    string `json:"p2"`
	P3    string `json:"p3"`
	P4    string `json:"p4"`
}

// SiteContent is the single editable document backing the whole site.
// Admin saves always replace it wholesale; it is never patched field by field.
type SiteContent struct {
	Theme       Theme            `json:"theme"`
	Hero        Hero             `json:"hero"`
	About       About            `json:"about"`
	Experiences []ExperienceItem `json:"experiences"`
	Education   []EducationItem  `json:"education"`
	Languages   []LanguageItem   `json:"languages"`
	Skills      []Skill          `json:"skills"`
	Manifesto   Manifesto        `json:"manifesto"`
}

// PortfolioItem is one gallery entry. ID is unique for the lifetime of the
// collection; Image is an absolute URL or an /uploads/ path served by us.
type PortfolioItem struct {
	ID    string `json:"id"`
	Image string `json:"image"`
	Link  string `json:"link"`
	Title string `json:"title"`
}

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// ChatMessage is one turn in an assistant conversation. Messages live only in
// the session that produced them and are never persisted.
type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}
