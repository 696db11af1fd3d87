package apis

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/go-dashboard/errors"
	"github.com/supakorn-kn/go-dashboard/objects"
)

const sessionCookie = "session"

type loginResponse struct {
	Token string        `json:"token"`
	Admin objects.Admin `json:"admin"`
}

func sessionToken(ctx *gin.Context) string {

	if header := ctx.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}

	token, err := ctx.Cookie(sessionCookie)
	if err != nil {
		return ""
	}

	return token
}

// Guard rejects requests without a live session and hands the admin's
// dashboard to the handlers behind it.
func (s *Server) Guard() gin.HandlerFunc {

	return func(ctx *gin.Context) {

		token := sessionToken(ctx)

		session, err := s.manager.Authenticate(ctx.Request.Context(), token)
		if err != nil {

			if token != "" {
				s.dropDashboard(token)
			}

			writeErrorJSON(ctx, err)
			ctx.Abort()
			return
		}

		dashboard, err := s.dashboardFor(session)
		if err != nil {
			writeErrorJSON(ctx, err)
			ctx.Abort()
			return
		}

		ctx.Set(sessionContextKey, session)
		ctx.Set(dashboardContextKey, dashboard)
		ctx.Next()
	}
}

func (s *Server) login(ctx *gin.Context) {

	var credentials objects.Credentials
	if err := ctx.ShouldBindJSON(&credentials); err != nil {
		writeErrorJSON(ctx, errors.CredentialsMissingError.New())
		return
	}

	session, err := s.manager.Login(ctx.Request.Context(), credentials)
	if err != nil {
		writeErrorJSON(ctx, err)
		return
	}

	maxAge := int(session.ExpiresAt.Sub(session.CreatedAt).Seconds())
	ctx.SetCookie(sessionCookie, session.Token, maxAge, "/", "", false, true)

	ctx.JSON(http.StatusOK, CRUDResponse{Result: loginResponse{Token: session.Token, Admin: session.Admin}})
}

func (s *Server) logout(ctx *gin.Context) {

	session := sessionOf(ctx)

	if err := s.manager.Logout(ctx.Request.Context(), session.Token); err != nil {
		writeErrorJSON(ctx, err)
		return
	}

	s.dropDashboard(session.Token)
	ctx.SetCookie(sessionCookie, "", -1, "/", "", false, true)

	ctx.JSON(http.StatusOK, OKResponse)
}

func (s *Server) me(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, CRUDResponse{Result: sessionOf(ctx).Admin})
}
