// Package hello serves the application's greeting route.
package hello

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// BlueprintName is the name the greeting routes are registered under.
	BlueprintName = "main"
	// Greeting is the exact response body of the root route.
	Greeting = "Hello World!"

	rootPathConstant = "/"
)

// RegisterRoutes attaches the greeting route to router.
func RegisterRoutes(router gin.IRouter) {
	router.GET(rootPathConstant, handleHelloWorld)
}

func handleHelloWorld(requestContext *gin.Context) {
	requestContext.String(http.StatusOK, Greeting)
}
