package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"anoa.com/forumapi/internal/config"
	"anoa.com/forumapi/internal/entity"
	"anoa.com/forumapi/internal/middleware"
	"anoa.com/forumapi/pkg/logger"
	"anoa.com/forumapi/pkg/ratelimiter"
	"anoa.com/forumapi/pkg/token"

	commentHttp "anoa.com/forumapi/internal/modules/comment/delivery/http"
	commentRepo "anoa.com/forumapi/internal/modules/comment/repository"
	commentService "anoa.com/forumapi/internal/modules/comment/service"

	likeHttp "anoa.com/forumapi/internal/modules/like/delivery/http"
	likeRepo "anoa.com/forumapi/internal/modules/like/repository"
	likeService "anoa.com/forumapi/internal/modules/like/service"

	replyHttp "anoa.com/forumapi/internal/modules/reply/delivery/http"
	replyRepo "anoa.com/forumapi/internal/modules/reply/repository"
	replyService "anoa.com/forumapi/internal/modules/reply/service"

	threadHttp "anoa.com/forumapi/internal/modules/thread/delivery/http"
	threadRepo "anoa.com/forumapi/internal/modules/thread/repository"
	threadService "anoa.com/forumapi/internal/modules/thread/service"

	userHttp "anoa.com/forumapi/internal/modules/user/delivery/http"
	userRepo "anoa.com/forumapi/internal/modules/user/repository"
	userService "anoa.com/forumapi/internal/modules/user/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

type Repositories struct {
	Threads  threadRepo.ThreadRepository
	Comments commentRepo.CommentRepository
	Replies  replyRepo.ReplyRepository
	Likes    likeRepo.LikeRepository
	Users    userRepo.UserRepository
	Auths    userRepo.AuthenticationRepository
}

// NewRepositories builds the gorm backed repositories.
func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Threads:  threadRepo.NewThreadRepository(db, entity.PrefixedID("thread")),
		Comments: commentRepo.NewCommentRepository(db, entity.PrefixedID("comment")),
		Replies:  replyRepo.NewReplyRepository(db, entity.PrefixedID("reply")),
		Likes:    likeRepo.NewLikeRepository(db, entity.PrefixedID("like")),
		Users:    userRepo.NewUserRepository(db, entity.PrefixedID("user")),
		Auths:    userRepo.NewAuthenticationRepository(db),
	}
}

type Options struct {
	Config   *config.Config
	Repos    Repositories
	Cooldown *ratelimiter.Cooldown
	// Ready is probed by /readyz. Nil means always ready.
	Ready    func(ctx context.Context) error
	Registry *prometheus.Registry
}

type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
}

// NewServer wires every module. ctx bounds background work such as the IP limiter janitor.
func NewServer(ctx context.Context, opts Options) *Server {
	cfg := opts.Config
	repos := opts.Repos

	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	metrics := middleware.NewMetrics(registry)

	tokens := token.NewManager(cfg.AccessTokenKey, cfg.RefreshTokenKey, cfg.AccessTokenAge)

	authSvc := userService.NewAuthService(repos.Users, repos.Auths, tokens)
	authHandler := userHttp.NewAuthHandler(authSvc)

	threadHandler := threadHttp.NewThreadHandler(
		threadService.NewAddThreadUseCase(repos.Threads),
		threadService.NewGetThreadUseCase(repos.Threads, repos.Comments, repos.Replies, repos.Likes),
	)

	commentHandler := commentHttp.NewCommentHandler(
		commentService.NewAddCommentUseCase(repos.Threads, repos.Comments),
		commentService.NewDeleteCommentUseCase(repos.Comments),
	)

	replyHandler := replyHttp.NewReplyHandler(
		replyService.NewAddReplyUseCase(repos.Comments, repos.Replies),
		replyService.NewDeleteReplyUseCase(repos.Replies),
	)

	likeHandler := likeHttp.NewLikeHandler(
		likeService.NewAddLikeUseCase(repos.Comments, repos.Likes),
	)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger("/healthz", "/readyz", "/metrics"))
	router.Use(metrics.Middleware())
	if cfg.LimiterEnabled {
		router.Use(middleware.NewIPRateLimiter(ctx, cfg.LimiterRPS, cfg.LimiterBurst).Middleware())
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/readyz", func(c *gin.Context) {
		if opts.Ready != nil {
			if err := opts.Ready(c.Request.Context()); err != nil {
				logger.Log.Warn("readiness check failed", "error", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Public routes (no auth required)
	router.POST("/users", authHandler.PostUser)
	router.POST("/authentications", authHandler.PostAuthentication)
	router.PUT("/authentications", authHandler.PutAuthentication)
	router.DELETE("/authentications", authHandler.DeleteAuthentication)
	router.GET("/threads/:threadId", threadHandler.GetThreadByID)

	authMiddleware := middleware.NewAuthMiddleware(tokens)

	protected := router.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.POST("/threads",
			middleware.Cooldown(opts.Cooldown, "thread", cfg.RateLimitThread),
			threadHandler.PostThread)

		comments := protected.Group("/threads/:threadId/comments")
		comments.POST("",
			middleware.Cooldown(opts.Cooldown, "comment", cfg.RateLimitComment),
			commentHandler.PostComment)
		comments.DELETE("/:commentId", commentHandler.DeleteComment)

		comments.POST("/:commentId/replies",
			middleware.Cooldown(opts.Cooldown, "reply", cfg.RateLimitComment),
			replyHandler.PostReply)
		comments.DELETE("/:commentId/replies/:replyId", replyHandler.DeleteReply)

		comments.PUT("/:commentId/likes", likeHandler.PutLike)
	}

	return &Server{
		engine: router,
		httpServer: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       time.Minute,
		},
	}
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run blocks until the server stops. A graceful Shutdown is not reported as an error.
func (s *Server) Run() error {
	logger.Log.Info("server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
