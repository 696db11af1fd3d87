package objects

type Review struct {
	ReviewID string `json:"_id,omitempty"`
	Rating   int    `json:"rating" binding:"min=1,max=5"`
	UserName string `json:"user_name" binding:"required"`
	Comments string `json:"comments"`
	Company  string `json:"company"`
	Avatar   string `json:"avatar,omitempty"`
}

func (r Review) GetID() string {
	return r.ReviewID
}

// Hero is the landing page hero block.
type Hero struct {
	HeroID         string   `json:"_id"`
	TitleLines     string   `json:"title_lines"`
	Subheading     string   `json:"subheading"`
	Subhighlight   string   `json:"subhighlight"`
	Description    string   `json:"description"`
	ButtonText     string   `json:"button_text"`
	ButtonPath     string   `json:"button_path"`
	Image          []string `json:"image"`
	Features       []string `json:"features"`
	IntroHeading   string   `json:"intro_heading"`
	IntroHighlight string   `json:"intro_highlight"`
	ParagraphText  string   `json:"paragraph_text"`
}

func (h Hero) GetID() string {
	return h.HeroID
}

type Count struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

func (c Count) GetID() string {
	return c.Type
}
