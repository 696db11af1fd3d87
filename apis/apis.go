package apis

import (
	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/go-dashboard/errors"
	"github.com/supakorn-kn/go-dashboard/resources"
)

type CRUDResponse struct {
	Result any              `json:"result,omitempty"`
	Error  errors.BaseError `json:"error,omitempty"`
}

// CrudAPI serves the item routes of one resource. Implementations resolve
// the signed-in admin's resources from the gin context.
type CrudAPI[Item resources.Item] interface {
	Insert(ctx *gin.Context) error
	ReadOne(itemID string, ctx *gin.Context) (*Item, error)
	Update(itemID string, ctx *gin.Context) error
	Delete(itemID string, ctx *gin.Context) error
}

var OKResponse = CRUDResponse{Result: map[string]any{"status": "OK"}}
