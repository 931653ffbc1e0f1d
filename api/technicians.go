package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/jrocha/techbook/internal/auth"
	"github.com/jrocha/techbook/pkg/models"
	"github.com/jrocha/techbook/pkg/repository"
)

// pageSize is the fixed number of technicians per browse page.
const pageSize = 4

// maxUploadBytes caps the multipart form size for uploads (photo + PDF).
const maxUploadBytes = 32 << 20

type TechniciansHandler struct {
	techRepo  repository.TechnicianRepo
	adminGate auth.AdminGate
}

func NewTechniciansHandler(tr repository.TechnicianRepo, gate auth.AdminGate) *TechniciansHandler {
	return &TechniciansHandler{techRepo: tr, adminGate: gate}
}

type createTechnicianResponse struct {
	TechID string `json:"tech_id"`
}

type listTechniciansResponse struct {
	Items      []models.Technician `json:"items"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int64               `json:"total_pages"`
}

// CreateTechnician handles the multipart upload form. All three text fields
// and both files are required.
func (h *TechniciansHandler) CreateTechnician(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, fmt.Errorf("%w: invalid multipart form", models.ErrValidation))
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	phone := strings.TrimSpace(r.FormValue("phone"))
	address := strings.TrimSpace(r.FormValue("address"))

	photo, err := readImagePart(r, "photo")
	if err != nil {
		writeError(w, err)
		return
	}
	cert, err := readPDFPart(r, "certificate")
	if err != nil {
		writeError(w, err)
		return
	}

	if name == "" || phone == "" || address == "" || photo == nil || cert == nil {
		writeError(w, fmt.Errorf("%w: name, phone, address, photo and certificate are all required", models.ErrValidation))
		return
	}

	ctx := r.Context()

	// Allocating the identifier and inserting the row are separate
	// statements; concurrent uploads can interleave between them. The
	// counter itself never repeats, so the unique constraint holds.
	techID, err := h.techRepo.NextTechID(ctx)
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err))
		return
	}

	t := &models.Technician{
		TechID:      techID,
		Name:        name,
		Phone:       phone,
		Address:     address,
		Photo:       photo,
		Certificate: cert,
	}
	if _, err := h.techRepo.CreateTechnician(ctx, t); err != nil {
		writeError(w, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err))
		return
	}

	writeJSON(w, createTechnicianResponse{TechID: techID}, http.StatusCreated)
}

// ListTechnicians returns one fixed-size page of profiles in insertion
// order. Pages are 1-based.
func (h *TechniciansHandler) ListTechnicians(w http.ResponseWriter, r *http.Request) {
	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		v, err := strconv.Atoi(p)
		if err != nil || v < 1 {
			writeError(w, fmt.Errorf("%w: invalid page", models.ErrValidation))
			return
		}
		page = v
	}

	ctx := r.Context()

	items, err := h.techRepo.ListTechnicians(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err))
		return
	}

	total, err := h.techRepo.CountTechnicians(ctx)
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err))
		return
	}

	if items == nil {
		items = []models.Technician{}
	}

	resp := listTechniciansResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: (total + pageSize - 1) / pageSize,
	}

	writeJSON(w, resp, http.StatusOK)
}

func (h *TechniciansHandler) GetTechnician(w http.ResponseWriter, r *http.Request) {
	t, err := h.lookup(r)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, t, http.StatusOK)
}

// GetPhoto serves the stored photo bytes whole.
func (h *TechniciansHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	t, err := h.lookup(r)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(t.Photo))
	w.WriteHeader(http.StatusOK)
	w.Write(t.Photo)
}

// GetCertificate serves the stored PDF as a download named after the
// technician.
func (h *TechniciansHandler) GetCertificate(w http.ResponseWriter, r *http.Request) {
	t, err := h.lookup(r)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", t.Name+"_Technical_Certificate.pdf"))
	w.WriteHeader(http.StatusOK)
	w.Write(t.Certificate)
}

// UpdateTechnician replaces the text fields and, only when a new file was
// supplied, the corresponding attachment. Omitted files keep the stored
// bytes.
func (h *TechniciansHandler) UpdateTechnician(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, fmt.Errorf("%w: invalid multipart form", models.ErrValidation))
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	phone := strings.TrimSpace(r.FormValue("phone"))
	address := strings.TrimSpace(r.FormValue("address"))
	if name == "" || phone == "" || address == "" {
		writeError(w, fmt.Errorf("%w: name, phone and address are required", models.ErrValidation))
		return
	}

	t, err := h.lookup(r)
	if err != nil {
		writeError(w, err)
		return
	}

	photo, err := readImagePart(r, "photo")
	if err != nil {
		writeError(w, err)
		return
	}
	cert, err := readPDFPart(r, "certificate")
	if err != nil {
		writeError(w, err)
		return
	}

	t.Name = name
	t.Phone = phone
	t.Address = address
	if photo != nil {
		t.Photo = photo
	}
	if cert != nil {
		t.Certificate = cert
	}

	if err := h.techRepo.UpdateTechnician(r.Context(), t); err != nil {
		writeError(w, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteTechnician removes a row by internal id. It is gated by the shared
// admin password, independent of the caller's login.
func (h *TechniciansHandler) DeleteTechnician(w http.ResponseWriter, r *http.Request) {
	if !h.adminGate.Approve(r.Header.Get("X-Admin-Password")) {
		writeError(w, models.ErrIncorrectPassword)
		return
	}

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, fmt.Errorf("%w: invalid technician id", models.ErrValidation))
		return
	}

	affected, err := h.techRepo.DeleteTechnician(r.Context(), id)
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err))
		return
	}
	if affected == 0 {
		writeError(w, fmt.Errorf("%w: no technician with id %d", models.ErrNotFound, id))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TechniciansHandler) lookup(r *http.Request) (*models.Technician, error) {
	techID := mux.Vars(r)["techID"]
	t, err := h.techRepo.GetByTechID(r.Context(), techID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	if t == nil {
		return nil, fmt.Errorf("%w: no technician %q", models.ErrNotFound, techID)
	}

	return t, nil
}

// readImagePart reads an optional multipart file and checks it is a JPEG or
// PNG. A missing part returns nil bytes and no error.
func readImagePart(r *http.Request, field string) ([]byte, error) {
	b, err := readFilePart(r, field)
	if err != nil || b == nil {
		return nil, err
	}

	switch ct := http.DetectContentType(b); ct {
	case "image/jpeg", "image/png":
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a JPEG or PNG image", models.ErrValidation, field)
	}
}

// readPDFPart reads an optional multipart file and checks it is a PDF.
func readPDFPart(r *http.Request, field string) ([]byte, error) {
	b, err := readFilePart(r, field)
	if err != nil || b == nil {
		return nil, err
	}

	if http.DetectContentType(b) != "application/pdf" {
		return nil, fmt.Errorf("%w: %s must be a PDF", models.ErrValidation, field)
	}

	return b, nil
}

func readFilePart(r *http.Request, field string) ([]byte, error) {
	f, _, err := r.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", models.ErrValidation, field, err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", field, err)
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: %s file is empty", models.ErrValidation, field)
	}

	return b, nil
}
