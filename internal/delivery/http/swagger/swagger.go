package http_swagger

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Controller serves the Swagger UI for the coordinator API. The document
// itself is registered by docs.go.
type Controller struct {
	handler gin.HandlerFunc
}

func New() *Controller {
	return &Controller{
		handler: ginSwagger.WrapHandler(swaggerFiles.Handler,
			ginSwagger.InstanceName(SwaggerInfo.InstanceName()),
			ginSwagger.DocExpansion("list"),
			ginSwagger.DefaultModelsExpandDepth(-1),
		),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/swagger/*any", c.handler)
}
