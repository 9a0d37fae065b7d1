package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle collects all endpoint handlers for route registration.
type HandlerBundle struct {
	Chat          gin.HandlerFunc
	Quote         gin.HandlerFunc
	ListServices  gin.HandlerFunc
	CreateBooking gin.HandlerFunc
	GetBooking    gin.HandlerFunc
	SuggestSlot   gin.HandlerFunc
}
