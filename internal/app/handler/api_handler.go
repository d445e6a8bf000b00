package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"requisiciones/internal/app/ds"
	"requisiciones/internal/app/dto"
	"requisiciones/internal/app/repository"
	"requisiciones/internal/app/role"
	"requisiciones/internal/app/storage"
	"requisiciones/internal/app/workflow"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// APIHandler contiene los handlers del REST API
type APIHandler struct {
	Repository  *repository.Repository
	MinIOClient *storage.MinIOClient
	AuthHandler *AuthHandler
}

func NewAPIHandler(r *repository.Repository, minioClient *storage.MinIOClient, authHandler *AuthHandler) *APIHandler {
	return &APIHandler{
		Repository:  r,
		MinIOClient: minioClient,
		AuthHandler: authHandler,
	}
}

// Obtener el actor (identidad + rol) del contexto que dejó el middleware
func (h *APIHandler) getActorFromContext(c *gin.Context) (role.Actor, error) {
	userID, exists := c.Get("userID")
	if !exists {
		logrus.Warn("userID not found in context")
		return role.Actor{}, errors.New("usuario no autenticado")
	}

	id, ok := userID.(uint)
	if !ok {
		logrus.Errorf("getActorFromContext: invalid userID type: %T", userID)
		return role.Actor{}, errors.New("ID de usuario inválido")
	}

	username, _ := c.Get("username")
	uname, _ := username.(string)

	userRole, _ := c.Get("userRole")
	r, _ := userRole.(role.Role)

	return role.Actor{ID: id, Username: uname, Role: r}, nil
}

// ============ Funciones auxiliares ============

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *APIHandler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// domainError traduce los errores de dominio a códigos HTTP. Los errores de
// infraestructura se quedan como 500 genérico.
func (h *APIHandler) domainError(c *gin.Context, err error) {
	if kind, ok := workflow.KindOf(err); ok {
		switch kind {
		case workflow.KindValidacion:
			h.errorResponse(c, http.StatusBadRequest, err.Error())
		case workflow.KindAutorizacion:
			h.errorResponse(c, http.StatusForbidden, err.Error())
		default: // estado o conflicto
			h.errorResponse(c, http.StatusConflict, err.Error())
		}
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		h.errorResponse(c, http.StatusNotFound, "Requisición no encontrada")
		return
	}
	logrus.Error("unexpected error: ", err)
	h.errorResponse(c, http.StatusInternalServerError, "Error interno")
}

func (h *APIHandler) parseID(c *gin.Context) (uint, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "ID de requisición inválido")
		return 0, false
	}
	return uint(id), true
}

// ============ DOMINIO REQUISICIONES ============

// GetRequisiciones lista requisiciones con filtros
// @Summary Listado de requisiciones
// @Description Regresa las requisiciones filtradas por proyecto, prioridad, fecha de mantenimiento y estado
// @Tags Requisiciones
// @Produce json
// @Security BearerAuth
// @Param proyecto query string false "Búsqueda por proyecto"
// @Param prioridad query string false "Alta / Media / Baja"
// @Param fecha_mantenimiento query string false "Fecha (2006-01-02)"
// @Param estado query string false "Filtro por estado"
// @Success 200 {object} dto.RequisicionListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/requisiciones [get]
func (h *APIHandler) GetRequisiciones(c *gin.Context) {
	filtros := repository.Filtros{
		Proyecto:  c.Query("proyecto"),
		Prioridad: c.Query("prioridad"),
		Estado:    c.Query("estado"),
	}

	if fechaStr := c.Query("fecha_mantenimiento"); fechaStr != "" {
		if parsed, err := time.Parse("2006-01-02", fechaStr); err == nil {
			filtros.FechaMantenimiento = &parsed
		}
		// fecha inválida: se ignora el filtro
	}

	reqs, err := h.Repository.ListRequisitions(filtros)
	if err != nil {
		logrus.Error("Error listing requisitions: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Error al obtener requisiciones")
		return
	}

	dtoReqs := make([]dto.RequisicionResponse, len(reqs))
	for i, r := range reqs {
		dtoReqs[i] = toRequisicionResponse(r, false)
	}

	c.JSON(http.StatusOK, dto.RequisicionListResponse{
		Requisiciones: dtoReqs,
		Total:         len(dtoReqs),
		Estados:       workflow.EstadosPosibles,
	})
}

// GetRequisicion regresa una requisición con sus materiales
// @Summary Detalle de requisición
// @Tags Requisiciones
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la requisición"
// @Success 200 {object} dto.RequisicionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/requisiciones/{id} [get]
func (h *APIHandler) GetRequisicion(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	req, err := h.Repository.GetRequisitionByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Requisición no encontrada")
		return
	}

	c.JSON(http.StatusOK, toRequisicionResponse(*req, true))
}

// CreateRequisicion crea una requisición nueva
// @Summary Crear requisición
// @Description Crea una requisición con sus materiales (solo Mantenimiento)
// @Tags Requisiciones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRequisicionRequest true "Datos de la requisición"
// @Success 201 {object} dto.RequisicionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/requisiciones [post]
func (h *APIHandler) CreateRequisicion(c *gin.Context) {
	actor, err := h.getActorFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Error de autorización")
		return
	}

	var req dto.CreateRequisicionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Datos inválidos: "+err.Error())
		return
	}

	fechaMant, err := time.Parse("2006-01-02", req.FechaMantenimiento)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Fecha de mantenimiento inválida.")
		return
	}

	drafts := make([]workflow.MaterialDraft, len(req.Materiales))
	for i, m := range req.Materiales {
		drafts[i] = workflow.MaterialDraft{
			Descripcion: m.Descripcion,
			Unidad:      m.Unidad,
			Cantidad:    m.Cantidad,
		}
	}

	datos := workflow.DatosRequisicion{
		FechaMantenimiento: fechaMant,
		Proyecto:           req.Proyecto,
		Utilizacion:        req.Utilizacion,
		AreaUso:            req.AreaUso,
		Prioridad:          req.Prioridad,
	}

	nueva, err := workflow.Crear(actor, datos, drafts, time.Now())
	if err != nil {
		h.domainError(c, err)
		return
	}

	if err := h.Repository.CreateRequisition(nueva); err != nil {
		logrus.Error("Error creating requisition: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Error al crear la requisición")
		return
	}

	c.JSON(http.StatusCreated, toRequisicionResponse(*nueva, true))
}

// AutorizarRequisicion autoriza una requisición pendiente
// @Summary Autorizar requisición
// @Description Autoriza una requisición de un solicitante restringido (solo autorizadores)
// @Tags Requisiciones
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la requisición"
// @Success 200 {object} dto.RequisicionResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/requisiciones/{id}/autorizar [put]
func (h *APIHandler) AutorizarRequisicion(c *gin.Context) {
	h.transicion(c, func(actor role.Actor, req *ds.Requisition) error {
		return workflow.Autorizar(req, actor, time.Now())
	})
}

// RegistrarCompras registra los datos de compra por material
// @Summary Registrar compras
// @Description Captura costos, cantidades compradas, proveedores y exclusiones por material (solo Compras)
// @Tags Requisiciones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la requisición"
// @Param request body dto.CompraRequest true "Datos de compra por material"
// @Success 200 {object} dto.RequisicionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/requisiciones/{id}/compras [put]
func (h *APIHandler) RegistrarCompras(c *gin.Context) {
	var body dto.CompraRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Datos inválidos: "+err.Error())
		return
	}

	inputs := make([]workflow.CompraInput, len(body.Materiales))
	for i, m := range body.Materiales {
		inputs[i] = workflow.CompraInput{
			MaterialID:          m.MaterialID,
			CostoUnitario:       m.CostoUnitario,
			CompradoQty:         m.CompradoQty,
			Proveedor:           m.Proveedor,
			NoComprado:          m.NoComprado,
			NoAutorizadoCompras: m.NoAutorizadoCompras,
		}
	}

	h.transicion(c, func(actor role.Actor, req *ds.Requisition) error {
		return workflow.RegistrarCompra(req, actor, inputs)
	})
}

// RegistrarRecepcion marca la llegada de materiales a almacén
// @Summary Registrar recepción en almacén
// @Description Marca qué materiales comprados llegaron (solo Almacén)
// @Tags Requisiciones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la requisición"
// @Param request body dto.RecepcionRequest true "Recepción por material"
// @Success 200 {object} dto.RequisicionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/requisiciones/{id}/almacen [put]
func (h *APIHandler) RegistrarRecepcion(c *gin.Context) {
	var body dto.RecepcionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Datos inválidos: "+err.Error())
		return
	}

	inputs := make([]workflow.RecepcionInput, len(body.Materiales))
	for i, m := range body.Materiales {
		inputs[i] = workflow.RecepcionInput{MaterialID: m.MaterialID, Recibido: m.Recibido}
	}

	h.transicion(c, func(actor role.Actor, req *ds.Requisition) error {
		return workflow.RegistrarRecepcion(req, actor, inputs, time.Now())
	})
}

// RegistrarRetiro registra el retiro de materiales recibidos
// @Summary Registrar retiro de material
// @Description Registra cantidades retiradas o la marca de no retirado (solo Mantenimiento); cierra la requisición al completarse
// @Tags Requisiciones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la requisición"
// @Param request body dto.RetiroRequest true "Retiro por material"
// @Success 200 {object} dto.RequisicionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/requisiciones/{id}/retiro [put]
func (h *APIHandler) RegistrarRetiro(c *gin.Context) {
	var body dto.RetiroRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Datos inválidos: "+err.Error())
		return
	}

	inputs := make([]workflow.RetiroInput, len(body.Materiales))
	for i, m := range body.Materiales {
		inputs[i] = workflow.RetiroInput{
			MaterialID:  m.MaterialID,
			RetiradoQty: m.RetiradoQty,
			NoRetirado:  m.NoRetirado,
		}
	}

	h.transicion(c, func(actor role.Actor, req *ds.Requisition) error {
		return workflow.RegistrarRetiro(req, actor, inputs, time.Now())
	})
}

// transicion es el ciclo común de toda transición: cargar, aplicar en
// memoria, guardar versionado. Cualquier rechazo deja la requisición intacta.
func (h *APIHandler) transicion(c *gin.Context, apply func(actor role.Actor, req *ds.Requisition) error) {
	actor, err := h.getActorFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Error de autorización")
		return
	}

	id, ok := h.parseID(c)
	if !ok {
		return
	}

	req, err := h.Repository.GetRequisitionByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Requisición no encontrada")
		return
	}

	if err := apply(actor, req); err != nil {
		h.domainError(c, err)
		return
	}

	if err := h.Repository.SaveTransition(req); err != nil {
		h.domainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRequisicionResponse(*req, true))
}
