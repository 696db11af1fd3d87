package objects

import "reflect"

// Admin is the signed-in user object returned by the login endpoint.
type Admin struct {
	AdminID string `json:"_id" bson:"admin_id,omitempty"`
	Name    string `json:"name,omitempty" bson:"name,omitempty"`
	Number  string `json:"number,omitempty" bson:"number,omitempty"`
	Email   string `json:"email,omitempty" bson:"email,omitempty"`
	Role    string `json:"role,omitempty" bson:"role,omitempty"`
	Token   string `json:"token,omitempty" bson:"api_token,omitempty"`
}

func (a Admin) GetID() string {
	return a.AdminID
}

func (a Admin) IsNil() bool {
	return reflect.ValueOf(a).IsZero()
}

type Credentials struct {
	Number   string `json:"number"`
	Password string `json:"password"`
}
