package apis

import (
	"log/slog"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/go-dashboard/errors"
	"github.com/supakorn-kn/go-dashboard/objects"
	"github.com/supakorn-kn/go-dashboard/remote"
	"github.com/supakorn-kn/go-dashboard/resources"
	"github.com/supakorn-kn/go-dashboard/screens"
	"github.com/supakorn-kn/go-dashboard/sessions"
)

const (
	sessionContextKey   = "session"
	dashboardContextKey = "dashboard"
)

// Dashboard is what one signed-in admin works with: the remote resources,
// authorised with the admin's API token, and the list screens over them.
type Dashboard struct {
	Catalog *resources.Catalog
	Screens *screens.Set
}

type Server struct {
	manager  *sessions.Manager
	client   *remote.Client
	pageSize int

	mu         sync.Mutex
	dashboards map[string]*Dashboard
}

func NewServer(manager *sessions.Manager, client *remote.Client, pageSize int) (*Server, error) {

	if pageSize < 1 {
		return nil, errors.PageSizeInvalidError.New()
	}

	return &Server{
		manager:    manager,
		client:     client,
		pageSize:   pageSize,
		dashboards: map[string]*Dashboard{},
	}, nil
}

// Register mounts every dashboard route under /api.
func (s *Server) Register(g *gin.Engine) {

	auth := g.Group("api/auth")
	auth.POST("login", s.login)
	auth.POST("logout", s.Guard(), s.logout)
	auth.GET("me", s.Guard(), s.me)

	api := g.Group("api", s.Guard())
	api.GET("counts", s.counts)

	for _, name := range []string{"employees", "contacts", "reachus", "subscribers", "skills", "services", "it-services", "heroes"} {
		RegisterScreenAPI(name, api.Group(name))
	}

	RegisterCrudAPI[objects.Employee](newEmployeesAPI(), api.Group("employees"))
	RegisterCrudAPI[objects.Skill](newResourceAPI[objects.Skill]("skills", func(c *resources.Catalog) any { return c.Skills }), api.Group("skills"))
	RegisterCrudAPI[objects.Service](newResourceAPI[objects.Service]("services", func(c *resources.Catalog) any { return c.Services }), api.Group("services"))
	RegisterCrudAPI[objects.Hero](newResourceAPI[objects.Hero]("heroes", func(c *resources.Catalog) any { return c.Heroes }), api.Group("heroes"))
	RegisterCrudAPI[objects.Review](newResourceAPI[objects.Review]("reviews", func(c *resources.Catalog) any { return c.Reviews }), api.Group("reviews"))
	registerSectionItemsAPI(api.Group("it-services"))
}

func (s *Server) dashboardFor(session sessions.Session) (*Dashboard, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	if dashboard, ok := s.dashboards[session.Token]; ok {
		return dashboard, nil
	}

	client := s.client
	if session.Admin.Token != "" {
		client = client.WithToken(session.Admin.Token)
	}

	catalog := resources.NewCatalog(client)
	set, err := screens.NewDashboard(catalog, s.pageSize)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{Catalog: catalog, Screens: set}
	s.dashboards[session.Token] = dashboard

	slog.Debug("dashboard created", "admin", session.Admin.GetID())

	return dashboard, nil
}

func (s *Server) dropDashboard(token string) {

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.dashboards, token)
}

func dashboardOf(ctx *gin.Context) *Dashboard {
	return ctx.MustGet(dashboardContextKey).(*Dashboard)
}

func sessionOf(ctx *gin.Context) sessions.Session {
	return ctx.MustGet(sessionContextKey).(sessions.Session)
}

func screenOf(ctx *gin.Context, name string) (screens.Handle, error) {
	return dashboardOf(ctx).Screens.Get(name)
}

// markStale asks the screen to refetch on its next view, as the list does
// after returning from a create or edit form.
func markStale(ctx *gin.Context, name string) {

	if screen, err := screenOf(ctx, name); err == nil {
		screen.MarkStale()
	}
}

func removeRow(ctx *gin.Context, name, itemID string) {

	if screen, err := screenOf(ctx, name); err == nil {
		screen.Remove(itemID)
	}
}
