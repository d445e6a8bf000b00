package handler

import (
	"requisiciones/internal/app/middleware"
	"requisiciones/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes registra los endpoints REST con su autorización por rol.
// La verificación fina (autorizadores, estado actual) vive en workflow; aquí
// solo se corta por rol para no cargar requisiciones de más.
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	// ============ Requisiciones ============
	reqs := api.Group("/requisiciones")
	{
		// Para todos los roles autenticados
		reqs.GET("", authMiddleware.WithAuthCheck(role.Mantenimiento, role.Almacen, role.Compras), h.GetRequisiciones)
		reqs.GET("/export", authMiddleware.WithAuthCheck(role.Mantenimiento, role.Almacen, role.Compras), h.ExportCSV)
		reqs.GET("/:id", authMiddleware.WithAuthCheck(role.Mantenimiento, role.Almacen, role.Compras), h.GetRequisicion)

		// Mantenimiento: crear, autorizar (solo autorizadores) y retiro
		reqs.POST("", authMiddleware.WithAuthCheck(role.Mantenimiento), h.CreateRequisicion)
		reqs.PUT("/:id/autorizar", authMiddleware.WithAuthCheck(role.Mantenimiento), h.AutorizarRequisicion)
		reqs.PUT("/:id/retiro", authMiddleware.WithAuthCheck(role.Mantenimiento), h.RegistrarRetiro)

		// Compras
		reqs.PUT("/:id/compras", authMiddleware.WithAuthCheck(role.Compras), h.RegistrarCompras)

		// Almacén
		reqs.PUT("/:id/almacen", authMiddleware.WithAuthCheck(role.Almacen), h.RegistrarRecepcion)
	}

	// ============ Autenticación ============
	auth := api.Group("/auth")
	{
		// Endpoints públicos
		auth.POST("/register", h.AuthHandler.RegisterUser)
		auth.POST("/login", h.AuthHandler.LoginUser)

		// Endpoints protegidos
		auth.GET("/profile", authMiddleware.WithAuthCheck(role.Mantenimiento, role.Almacen, role.Compras), h.AuthHandler.GetUserProfile)
		auth.POST("/logout", authMiddleware.WithAuthCheck(role.Mantenimiento, role.Almacen, role.Compras), h.AuthHandler.LogoutUser)
	}

	// Ping de verificación
	router.GET("/ping", h.Ping)
}

// Ping verifica que el API responda
// @Summary Verificación de servicio
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
