package apis

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) counts(ctx *gin.Context) {

	summary, err := dashboardOf(ctx).Catalog.Summarize(ctx.Request.Context())
	if err != nil {
		writeErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, CRUDResponse{Result: summary})
}
