package handlers

import (
	"errors"
	"io"

	"eduhub/internal/apis/dtos"
	"eduhub/internal/services"

	"github.com/gin-gonic/gin"
)

type SetupHandler struct {
	setupService services.SetupService
	seedDefault  bool
}

func NewSetupHandler(setupService services.SetupService, seedDefault bool) *SetupHandler {
	return &SetupHandler{
		setupService: setupService,
		seedDefault:  seedDefault,
	}
}

// @Summary Setup
// @Description Reset, provision and optionally seed the database
// @Accept json
// @Produce json
// @Param setupRequest body dtos.SetupRequest false "Setup request"
// @Success 201 {object} dtos.Response
func (h *SetupHandler) Run(c *gin.Context) {
	var req dtos.SetupRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBadRequest(c, err)
		return
	}
	seed := h.seedDefault
	if req.Seed != nil {
		seed = *req.Seed
	}

	response, statusCode, err := h.setupService.Run(c.Request.Context(), seed)
	respond(c, statusCode, response, err)
}

// @Summary Reset
// @Description Drop every collection
// @Produce json
// @Success 200 {object} dtos.Response
func (h *SetupHandler) Reset(c *gin.Context) {
	dropped, statusCode, err := h.setupService.Reset(c.Request.Context())
	respond(c, statusCode, gin.H{"dropped": dropped}, err)
}

// @Summary Provision
// @Description Create collections with their validators
// @Produce json
// @Success 201 {object} dtos.Response
func (h *SetupHandler) Provision(c *gin.Context) {
	created, statusCode, err := h.setupService.Provision(c.Request.Context())
	respond(c, statusCode, gin.H{"provisioned": created}, err)
}

// @Summary Seed
// @Description Insert the sample data
// @Produce json
// @Success 201 {object} dtos.Response
func (h *SetupHandler) Seed(c *gin.Context) {
	report, statusCode, err := h.setupService.Seed(c.Request.Context())
	respond(c, statusCode, report, err)
}
