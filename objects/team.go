package objects

import "reflect"

type Employee struct {
	EmployeeID   string `json:"_id,omitempty" form:"-"`
	Name         string `json:"name" form:"name" binding:"required"`
	Designation  string `json:"designation" form:"designation" binding:"required"`
	Image        string `json:"image,omitempty" form:"image"`
	LinkedinURL  string `json:"linkedin_url,omitempty" form:"linkedin_url"`
	TwitterURL   string `json:"twitter_url,omitempty" form:"twitter_url"`
	InstagramURL string `json:"instagram_url,omitempty" form:"instagram_url"`
	CreatedAt    string `json:"createdAt,omitempty" form:"-"`
	UpdatedAt    string `json:"updatedAt,omitempty" form:"-"`
}

func (e Employee) GetID() string {
	return e.EmployeeID
}

func (e Employee) IsNil() bool {
	return reflect.ValueOf(e).IsZero()
}

// FormFields lists the text parts sent with an employee upload, skipping empty values.
func (e Employee) FormFields() map[string]string {

	fields := map[string]string{}
	for key, value := range map[string]string{
		"name":          e.Name,
		"designation":   e.Designation,
		"linkedin_url":  e.LinkedinURL,
		"twitter_url":   e.TwitterURL,
		"instagram_url": e.InstagramURL,
	} {
		if value != "" {
			fields[key] = value
		}
	}

	return fields
}
