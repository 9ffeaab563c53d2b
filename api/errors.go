package api

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ProblemDetail struct {
	Type     string        `json:"type,omitempty" validate:"uri"`
	Status   int           `json:"status,omitempty"`
	Title    string        `json:"title,omitempty"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty" validate:"uri"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

type ErrorDetail struct {
	Detail  string `json:"detail"`
	Pointer string `json:"pointer"`
}

type ProblemOption func(*ProblemDetail)

func NewProblemDetail(options ...ProblemOption) ProblemDetail {
	problem := ProblemDetail{}
	for _, option := range options {
		option(&problem)
	}
	return problem
}

func WithStatus(s int) ProblemOption {
	return func(p *ProblemDetail) {
		p.Status = s
	}
}

func WithTitle(t string) ProblemOption {
	return func(p *ProblemDetail) {
		p.Title = t
	}
}

func WithDetail(d string) ProblemOption {
	return func(p *ProblemDetail) {
		p.Detail = d
	}
}

func WithInstance(i string) ProblemOption {
	return func(p *ProblemDetail) {
		p.Instance = i
	}
}

func WithErrors(e []ErrorDetail) ProblemOption {
	return func(p *ProblemDetail) {
		p.Errors = e
	}
}

func NewValidationProblem(e error) ProblemDetail {
	return NewProblemDetail(
		WithStatus(http.StatusBadRequest),
		WithTitle("Input Validation Error"),
		WithDetail("Your request body has invalid parameters."),
		WithErrors(readableErrors(e)),
	)
}

func NewEmptyBodyProblem() ProblemDetail {
	return NewProblemDetail(
		WithStatus(http.StatusBadRequest),
		WithTitle("Empty Request Body"),
		WithDetail("Your request did not include a body."),
	)
}

func NewInvalidDataProblem(instance string) ProblemDetail {
	return NewProblemDetail(
		WithStatus(http.StatusBadRequest),
		WithTitle("Invalid Data"),
		WithDetail("The store rejected the sample."),
		WithInstance(instance),
	)
}

func NewConflictProblem(instance string) ProblemDetail {
	return NewProblemDetail(
		WithStatus(http.StatusConflict),
		WithTitle("Duplicate Sample"),
		WithDetail("A sample with this id already exists."),
		WithInstance(instance),
	)
}

func NewInternalProblem(e error) ProblemDetail {
	return NewProblemDetail(
		WithStatus(http.StatusInternalServerError),
		WithTitle("Internal Error"),
		WithDetail(e.Error()),
	)
}

func readableErrors(err error) []ErrorDetail {
	var errors []ErrorDetail
	errs, ok := err.(validator.ValidationErrors)
	if ok {
		for _, e := range errs {
			var detail, pointer string
			switch e.Tag() {
			case "required":
				detail = "is required"
			case "max":
				detail = "is too long"
			default:
				detail = "is invalid"
			}
			pointer = "#/" + strings.ToLower(e.Field())
			errors = append(errors, ErrorDetail{Detail: detail, Pointer: pointer})
		}
	}
	return errors
}
