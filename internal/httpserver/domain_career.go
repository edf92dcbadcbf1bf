package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"careermate/internal/agent"
	"careermate/internal/agent/tools"
	"careermate/internal/backend"
	careerHTTP "careermate/internal/career/delivery/http"
	"careermate/internal/career/provider/memory"
	"careermate/internal/middleware"
	"careermate/internal/router"
	"careermate/internal/session"
	"careermate/internal/specialist"
)

// setupCareerDomain initializes the career domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Provider:     provider := mydomainProvider.New(...)
//  2. Create Tools:        registry.Register(mydomainTools.NewXTool(provider))
//  3. Create Router:       r := router.New(b, registry, srv.l)
//  4. Create HTTP Handler: h := mydomainHTTP.New(srv.l, sessions)
//  5. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/mydomain"), h, mw)
func (srv *HTTPServer) setupCareerDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Data provider
	provider := memory.New(memory.DefaultData())

	// 2. Tools
	registry := agent.NewToolRegistry()
	for _, tool := range []agent.Tool{
		tools.NewSkillGapTool(provider),
		tools.NewFindJobsTool(provider),
		tools.NewRecommendCoursesTool(provider),
	} {
		if err := registry.Register(tool); err != nil {
			return err
		}
	}

	// 3. Specialist handlers + backend + router
	handlers, err := specialist.BuildHandlers(registry)
	if err != nil {
		return err
	}
	b := backend.New(srv.generator, srv.l)
	r := router.New(b, registry, srv.l)

	// 4. Session manager
	ttl, err := time.ParseDuration(srv.agentCfg.SessionTTL)
	if err != nil {
		ttl = 10 * time.Minute
	}
	sessions := session.NewManager(session.ManagerConfig{
		TTL:            ttl,
		CacheSize:      srv.agentCfg.SessionCacheSize,
		MaxQueryLength: srv.agentCfg.MaxQueryLength,
	}, r, registry, b, handlers, srv.l)

	// 5. HTTP handler + routes: registers /api/v1/career/query
	h := careerHTTP.New(srv.l, sessions)
	careerHTTP.RegisterRoutes(api.Group("/career"), h, mw)

	srv.l.Infof(ctx, "Career domain registered")
	return nil
}
