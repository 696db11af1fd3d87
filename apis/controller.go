package apis

import (
	"context"
	stdErrors "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/go-dashboard/errors"
	"github.com/supakorn-kn/go-dashboard/resources"
)

func RegisterCrudAPI[Item resources.Item](api CrudAPI[Item], group *gin.RouterGroup) {

	group.POST("", func(ctx *gin.Context) {

		err := api.Insert(ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusCreated, OKResponse)
	})

	group.GET(":id", func(ctx *gin.Context) {

		itemID := ctx.Param("id")

		item, err := api.ReadOne(itemID, ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, CRUDResponse{Result: item})
	})

	group.PUT(":id", func(ctx *gin.Context) {

		err := api.Update(ctx.Param("id"), ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, OKResponse)
	})

	group.DELETE(":id", func(ctx *gin.Context) {

		err := api.Delete(ctx.Param("id"), ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, OKResponse)
	})
}

type menuRequest struct {
	ID string `json:"id"`
}

// RegisterScreenAPI serves the list screen called name: the current page,
// refetching and navigation.
func RegisterScreenAPI(name string, group *gin.RouterGroup) {

	group.GET("", func(ctx *gin.Context) {

		screen, err := screenOf(ctx, name)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		// A failed fetch still renders: the view carries the error message.
		err = screen.EnsureLoaded(ctx.Request.Context())
		if stdErrors.Is(err, context.Canceled) {
			return
		}

		if page, ok := ctx.GetQuery("page"); ok {

			pageNumber, err := strconv.Atoi(page)
			if err != nil {
				writeErrorJSON(ctx, errors.CurrentPageInvalidError.New())
				return
			}

			if err := screen.GoTo(pageNumber); err != nil {
				writeErrorJSON(ctx, err)
				return
			}
		}

		ctx.JSON(http.StatusOK, CRUDResponse{Result: screen.PageView()})
	})

	group.POST("refresh", func(ctx *gin.Context) {

		screen, err := screenOf(ctx, name)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		if err := screen.Refresh(ctx.Request.Context()); err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, CRUDResponse{Result: screen.PageView()})
	})

	group.POST("next", func(ctx *gin.Context) {

		screen, err := screenOf(ctx, name)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		screen.Next()
		ctx.JSON(http.StatusOK, CRUDResponse{Result: screen.PageView()})
	})

	group.POST("previous", func(ctx *gin.Context) {

		screen, err := screenOf(ctx, name)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		screen.Previous()
		ctx.JSON(http.StatusOK, CRUDResponse{Result: screen.PageView()})
	})

	group.POST("menu", func(ctx *gin.Context) {

		screen, err := screenOf(ctx, name)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		var request menuRequest
		if err := ctx.ShouldBindJSON(&request); err != nil {
			writeErrorJSON(ctx, errors.InvalidArgumentError.New(err))
			return
		}

		if request.ID == "" {
			screen.CloseMenu()
		} else {
			screen.ToggleMenu(request.ID)
		}

		ctx.JSON(http.StatusOK, CRUDResponse{Result: screen.PageView()})
	})
}

func writeErrorJSON(ctx *gin.Context, err error) {

	assertedError, ok := errors.TryAssertError(err)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, CRUDResponse{Error: errors.UnknownError.New(err)})
		return
	}

	var statusCode int
	var errorResponse = CRUDResponse{Error: assertedError}

	switch assertedError.Code {
	case errors.ObjectIDNotFoundErrorCode, errors.ResourceNotFoundErrorCode:
		statusCode = http.StatusNotFound
	case errors.UnauthorizedErrorCode, errors.InvalidCredentialsErrorCode:
		statusCode = http.StatusUnauthorized
	case errors.RemoteUnreachableErrorCode, errors.RemoteNotFoundErrorCode,
		errors.RemoteStatusErrorCode, errors.MalformedPayloadErrorCode:
		statusCode = http.StatusBadGateway
	case errors.UnknownErrorCode, errors.InvalidConfigCode:
		statusCode = http.StatusInternalServerError
	default:
		statusCode = http.StatusBadRequest
	}

	ctx.JSON(statusCode, errorResponse)
}
