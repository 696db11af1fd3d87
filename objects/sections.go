package objects

import "reflect"

type Skill struct {
	SkillID    string `json:"_id,omitempty"`
	Name       string `json:"name" binding:"required"`
	Percentage int    `json:"percentage" binding:"min=0,max=100"`
}

func (s Skill) GetID() string {
	return s.SkillID
}

func (s Skill) IsNil() bool {
	return reflect.ValueOf(s).IsZero()
}

type SkillSection struct {
	SectionID   string  `json:"_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Highlight   string  `json:"highlight"`
	ButtonLink  string  `json:"buttonLink"`
	ButtonText  string  `json:"buttonText"`
	Skills      []Skill `json:"skills"`
}

type Service struct {
	ServiceID   string `json:"_id,omitempty"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required,max=500"`
}

func (s Service) GetID() string {
	return s.ServiceID
}

type ServiceGroup struct {
	GroupID      string    `json:"_id"`
	SectionTitle string    `json:"sectionTitle"`
	Heading      string    `json:"heading"`
	Subtitle     string    `json:"subtitle"`
	Services     []Service `json:"services"`
}

const (
	ServiceItemKind = "service"
	ProductItemKind = "product"
)

// SectionItem is an IT service or a product of a service section. Kind is
// filled in when sections are flattened into one table.
type SectionItem struct {
	ItemID      string `json:"_id,omitempty"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Icon        string `json:"icon" binding:"required"`
	Kind        string `json:"type,omitempty"`
}

func (i SectionItem) GetID() string {
	return i.ItemID
}

type ServiceSection struct {
	SectionID       string        `json:"_id"`
	SectionTitle    string        `json:"sectionTitle"`
	ITServicesTitle string        `json:"itServicesTitle"`
	ProductsTitle   string        `json:"productsTitle"`
	ITServices      []SectionItem `json:"itServices"`
	Products        []SectionItem `json:"products"`
}
