package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"gitlab.com/nunet/sample-store/db/repositories"
	"gitlab.com/nunet/sample-store/models"
)

// SampleService is what the sample handlers need from the service layer.
type SampleService interface {
	Add(ctx context.Context, sample models.Sample) (models.Sample, error)
	List(ctx context.Context) ([]models.Sample, error)
	Remove(ctx context.Context, id string) (int64, error)
}

// AddSampleRequest is the body accepted by POST /samples. An id may not
// contain '/' since it has to fit in DELETE /samples/{id}.
type AddSampleRequest struct {
	ID          string `json:"id" binding:"max=128,excludesall=/"`
	Name        string `json:"name" binding:"required,max=256"`
	Description string `json:"description"`
}

// DeleteSampleResponse reports how many samples a delete removed.
type DeleteSampleResponse struct {
	Deleted int64 `json:"deleted"`
}

type SampleHandler struct {
	svc SampleService
}

func NewSampleHandler(svc SampleService) *SampleHandler {
	return &SampleHandler{svc: svc}
}

// HandleAddSample      godoc
//
//	@Summary		Store a new sample.
//	@Description	Stores a sample record. A missing id is generated.
//	@Tags			samples
//	@Accept			json
//	@Produce		json
//	@Param			sample	body		AddSampleRequest	true	"Sample to store"
//	@Success		201		{object}	models.Sample
//	@Failure		400		{object}	ProblemDetail	"empty or invalid body"
//	@Failure		409		{object}	ProblemDetail	"duplicate id"
//	@Failure		500		{object}	ProblemDetail	"store failure"
//	@Router			/samples [post]
func (h *SampleHandler) HandleAddSample(c *gin.Context) {
	if c.Request.ContentLength == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, NewEmptyBodyProblem())
		return
	}

	var req AddSampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, NewValidationProblem(err))
		return
	}

	span := trace.SpanFromContext(c.Request.Context())
	span.SetAttributes(attribute.String("URL", "/samples"))

	sample, err := h.svc.Add(c.Request.Context(), models.Sample{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		abortWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sample)
}

// HandleListSamples      godoc
//
//	@Summary		List samples.
//	@Description	Returns every stored sample, oldest first. An empty store yields an empty list.
//	@Tags			samples
//	@Produce		json
//	@Success		200	{array}		models.Sample
//	@Failure		500	{object}	ProblemDetail	"store failure"
//	@Router			/samples [get]
func (h *SampleHandler) HandleListSamples(c *gin.Context) {
	samples, err := h.svc.List(c.Request.Context())
	if err != nil {
		abortWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, samples)
}

// HandleDeleteSample      godoc
//
//	@Summary		Delete samples by id.
//	@Description	Removes every sample with the given id. Deleting an unknown id is not an error and reports 0.
//	@Tags			samples
//	@Produce		json
//	@Param			id	path		string	true	"Sample id"
//	@Success		200	{object}	DeleteSampleResponse
//	@Failure		500	{object}	ProblemDetail	"store failure"
//	@Router			/samples/{id} [delete]
func (h *SampleHandler) HandleDeleteSample(c *gin.Context) {
	id := c.Param("id")

	span := trace.SpanFromContext(c.Request.Context())
	span.SetAttributes(attribute.String("URL", "/samples/:id"))
	span.SetAttributes(attribute.String("SampleID", id))

	deleted, err := h.svc.Remove(c.Request.Context(), id)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, DeleteSampleResponse{Deleted: deleted})
}

func abortWithStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.DuplicateKeyError):
		c.AbortWithStatusJSON(http.StatusConflict, NewConflictProblem(c.Request.URL.Path))
	case errors.Is(err, repositories.InvalidDataError):
		c.AbortWithStatusJSON(http.StatusBadRequest, NewInvalidDataProblem(c.Request.URL.Path))
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, NewInternalProblem(err))
	}
}
