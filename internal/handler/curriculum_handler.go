package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/curriforge/internal/model"
	"github.com/stemsi/curriforge/internal/repository"
	"github.com/stemsi/curriforge/internal/response"
	"github.com/stemsi/curriforge/internal/service"
	"github.com/stemsi/curriforge/internal/validator"
)

type CurriculumHandler struct {
	curriculumService *service.CurriculumService
}

func NewCurriculumHandler(curriculumService *service.CurriculumService) *CurriculumHandler {
	return &CurriculumHandler{curriculumService: curriculumService}
}

// List godoc
// GET /api/curricula
func (h *CurriculumHandler) List(c *gin.Context) {
	curricula, err := h.curriculumService.List(c.Request.Context())
	if err != nil {
		failStorage(c, err, response.ErrFetchFailed)
		return
	}

	response.Success(c, http.StatusOK, curricula)
}

// Create godoc
// POST /api/curricula
func (h *CurriculumHandler) Create(c *gin.Context) {
	var req model.CreateCurriculumRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	cur, err := h.curriculumService.Create(c.Request.Context(), &req)
	if err != nil {
		failStorage(c, err, response.ErrSaveFailed)
		return
	}
	response.Success(c, http.StatusOK, model.CreateCurriculumResponse{ID: cur.ID})
}

// Delete godoc
// DELETE /api/curricula/:id
func (h *CurriculumHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.curriculumService.Delete(c.Request.Context(), id); err != nil {
		failStorage(c, err, response.ErrDeleteFailed)
		return
	}
	response.Success(c, http.StatusOK, model.DeleteCurriculumResponse{Success: true})
}

// failStorage answers 500 with the operation's message for store failures and
// a generic one for anything else.
func failStorage(c *gin.Context, err error, code response.ErrCode) {
	var storageErr *repository.StorageError
	if !errors.As(err, &storageErr) {
		code = response.ErrInternal
	}
	response.Fail(c, http.StatusInternalServerError, code)
}
