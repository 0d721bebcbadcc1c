package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"focalflow/internal/handler"
	"focalflow/pkg/mq"
)

type Router struct {
	Engine *gin.Engine
}

type Handlers struct {
	Auth        *handler.AuthHandler
	Project     *handler.ProjectHandler
	Client      *handler.ClientHandler
	Expense     *handler.ExpenseHandler
	Goal        *handler.GoalHandler
	Inspiration *handler.InspirationHandler
	Dashboard   *handler.DashboardHandler
	Settings    *handler.SettingsHandler
}

func NewRouter(h Handlers, logger *zap.Logger, db *pgxpool.Pool, publisher *mq.Publisher, jwtSecret string) *Router {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogMiddleware(logger))

	// Health endpoints
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(200)
	})

	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, 1*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(500, gin.H{"status": "db_not_ready", "error": err.Error()})
			return
		}

		if publisher != nil && !publisher.IsConnected() {
			c.JSON(500, gin.H{"status": "mq_not_ready"})
			return
		}

		c.JSON(200, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public
	r.POST("/register", h.Auth.Register)
	r.POST("/login", h.Auth.Login)

	// Protected
	auth := r.Group("/")
	auth.Use(AuthMiddleware(jwtSecret))
	{
		auth.GET("/projects", h.Project.ListProjects)
		auth.POST("/projects", h.Project.CreateProject)
		auth.GET("/projects/:id", h.Project.GetProject)
		auth.PUT("/projects/:id", h.Project.UpdateProject)
		auth.DELETE("/projects/:id", h.Project.DeleteProject)
		auth.PATCH("/projects/:id/steps", h.Project.ToggleStep)
		auth.PATCH("/projects/:id/status", h.Project.SetStatus)

		auth.GET("/clients", h.Client.ListClients)
		auth.POST("/clients", h.Client.CreateClient)
		auth.GET("/clients/:id", h.Client.GetClient)
		auth.PUT("/clients/:id", h.Client.UpdateClient)
		auth.DELETE("/clients/:id", h.Client.DeleteClient)

		auth.GET("/expenses", h.Expense.ListExpenses)
		auth.POST("/expenses", h.Expense.CreateExpense)
		auth.PUT("/expenses/:id", h.Expense.UpdateExpense)
		auth.DELETE("/expenses/:id", h.Expense.DeleteExpense)

		auth.GET("/goals", h.Goal.ListGoals)
		auth.POST("/goals", h.Goal.CreateGoal)
		auth.PUT("/goals/:id", h.Goal.UpdateGoal)
		auth.PATCH("/goals/:id/progress", h.Goal.AddGoalProgress)
		auth.DELETE("/goals/:id", h.Goal.DeleteGoal)

		auth.GET("/inspiration/folders", h.Inspiration.ListFolders)
		auth.POST("/inspiration/folders", h.Inspiration.CreateFolder)
		auth.PUT("/inspiration/folders/:id", h.Inspiration.UpdateFolder)
		auth.DELETE("/inspiration/folders/:id", h.Inspiration.DeleteFolder)
		auth.GET("/inspiration/folders/:id/items", h.Inspiration.ListItems)
		auth.POST("/inspiration/folders/:id/items", h.Inspiration.CreateItem)
		auth.PUT("/inspiration/items/:id", h.Inspiration.UpdateItem)
		auth.DELETE("/inspiration/items/:id", h.Inspiration.DeleteItem)

		auth.GET("/dashboard", h.Dashboard.GetStats)

		auth.GET("/settings", h.Settings.GetSettings)
		auth.PUT("/settings", h.Settings.PutSettings)
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
