package objects

// Contact is one contact-us form submission.
type Contact struct {
	ContactID      string `json:"_id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Message        string `json:"message"`
	AgreeToUpdates bool   `json:"agreeToUpdates"`
	CreatedAt      string `json:"createdAt,omitempty"`
	UpdatedAt      string `json:"updatedAt,omitempty"`
}

func (c Contact) GetID() string {
	return c.ContactID
}

// ReachUs is one project enquiry from the reach-us form.
type ReachUs struct {
	ReachUsID          string `json:"_id"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Email              string `json:"email"`
	Company            string `json:"company"`
	Phone              string `json:"phone"`
	Role               string `json:"role"`
	ProductDesign      string `json:"product_design"`
	ProductDescription string `json:"product_description"`
	ProjectBudget      string `json:"project_budget"`
	CreatedAt          string `json:"createdAt,omitempty"`
	UpdatedAt          string `json:"updatedAt,omitempty"`
}

func (r ReachUs) GetID() string {
	return r.ReachUsID
}

type Subscriber struct {
	SubscriberID string `json:"_id"`
	Email        string `json:"email"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

func (s Subscriber) GetID() string {
	return s.SubscriberID
}
