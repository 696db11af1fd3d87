package resources

import (
	"github.com/gin-gonic/gin/binding"
	serverError "github.com/supakorn-kn/go-dashboard/errors"
)

// Validate runs the `binding` tag rules of an item, the same rules gin
// applies to request bodies, so CLI and API writes are checked alike.
func Validate(item any) error {

	if binding.Validator == nil {
		return nil
	}

	if err := binding.Validator.ValidateStruct(item); err != nil {
		return serverError.InvalidArgumentError.New(err)
	}

	return nil
}
