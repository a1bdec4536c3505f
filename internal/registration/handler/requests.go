package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"regdesk/internal/proof"
	"regdesk/internal/registration/models"
	"regdesk/internal/registration/service"
	dErrors "regdesk/pkg/domain-errors"
)

// formOverhead leaves room for the multipart framing and text fields on top
// of the proof size limit.
const formOverhead = 1 << 20

type checkUserRequest struct {
	Email string `json:"email"`
}

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

type validateResponse struct {
	Success      bool           `json:"success"`
	Registration *models.Record `json:"registration"`
}

// parseSubmitForm extracts a proof submission from the multipart form. The
// field names match the existing frontend: nom, prenom, email, type, and the
// file under receipt.
func parseSubmitForm(r *http.Request) (service.SubmitProofInput, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, proof.MaxSize+formOverhead)
	if err := r.ParseMultipartForm(proof.MaxSize + formOverhead); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return service.SubmitProofInput{}, dErrors.New(dErrors.CodePayloadTooLarge, "upload exceeds the 5 MB limit")
		}
		return service.SubmitProofInput{}, dErrors.Wrap(err, dErrors.CodeBadRequest, "malformed multipart form")
	}

	file, _, err := r.FormFile("receipt")
	if err != nil {
		return service.SubmitProofInput{}, dErrors.New(dErrors.CodeBadRequest, "a receipt file is required")
	}
	defer file.Close()

	data, err := readProof(file)
	if err != nil {
		return service.SubmitProofInput{}, err
	}

	return service.SubmitProofInput{
		LastName:  r.FormValue("nom"),
		FirstName: r.FormValue("prenom"),
		Email:     r.FormValue("email"),
		Type:      r.FormValue("type"),
		File:      data,
	}, nil
}

func readProof(file multipart.File) ([]byte, error) {
	// Read one byte past the limit so oversize files are reported as such
	// instead of silently truncated.
	data, err := io.ReadAll(io.LimitReader(file, proof.MaxSize+1))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "failed to read uploaded file")
	}
	return data, nil
}
