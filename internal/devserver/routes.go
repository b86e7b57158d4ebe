package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/urbanhive/urbanhive-client/internal/middleware"
)

// SetupRouter registers every backend route on router
func SetupRouter(router *gin.Engine, b *Backend) {
	users := router.Group("/users")
	{
		users.POST("/password", b.Login)
	}

	user := router.Group("/user")
	{
		user.POST("/", b.CreateAccount)
		user.GET("/:id", b.GetUser)
		user.POST("/add-friend", b.AddFriend)
		user.POST("/respond-to-request", b.RespondToFriendRequest)
	}

	communities := router.Group("/communities")
	{
		communities.GET("/get_all", b.GetAllCommunities)
		communities.POST("/add_community", b.AddCommunity)
		communities.POST("/get_communities_by_radius_and_location", b.CommunitiesByRadius)
		communities.POST("/details_by_area", b.DetailsByArea)
		communities.POST("/request_to_join", b.RequestToJoin)
		communities.POST("/respond_to_join_request", b.RespondToJoinRequest)
	}

	events := router.Group("/events")
	{
		events.GET("/get_all_events", b.GetAllEvents)
		events.POST("/add_event", b.AddEvent)
		events.POST("/request_to_join_events", b.JoinEvent)
		events.POST("/delete_event", b.DeleteEvent)
	}

	posting := router.Group("/posting")
	{
		posting.POST("/add_post", b.AddPost)
		posting.POST("/add_comment_to_post", b.AddComment)
		posting.DELETE("/delete_post", b.DeletePost)
		posting.DELETE("/delete_comment_from_post", b.DeleteComment)
	}

	nightWatch := router.Group("/night_watch")
	{
		nightWatch.POST("/by_community", b.NightWatchesByCommunity)
		nightWatch.POST("/add_night_watch", b.AddNightWatch)
		nightWatch.POST("/join_watch", b.JoinWatch)
		nightWatch.POST("/close_night_watch", b.CloseWatch)
	}

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

// NewHandler builds the complete backend handler with logging, recovery and CORS
func NewHandler(b *Backend, allowedOrigins []string, logger zerolog.Logger) http.Handler {
	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(middleware.Recovery(), middleware.RequestLogger(logger))
	SetupRouter(router, b)

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	})
	return c.Handler(router)
}
